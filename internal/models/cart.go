package models

// CartItem is one line of a user's cart, with the product's current name
// and price joined in.
type CartItem struct {
	ProductID int64   `db:"product_id" json:"productId"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"productPrice"`
	Quantity  int     `db:"quantity" json:"quantity"`
}

type Cart struct {
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"products"`
	Total  float64    `json:"total"`
}

// TotalPrice sums price times quantity over the items. Empty carts total 0.
func TotalPrice(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
