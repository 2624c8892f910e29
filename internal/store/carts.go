package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/shoply/internal/models"
)

type CartStore interface {
	AddItem(ctx context.Context, userID, productID int64, quantity int) error
	Get(ctx context.Context, userID int64) (models.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64) error
}

type SQLCartStore struct {
	db *sqlx.DB
}

func NewCartStore(db *sqlx.DB) *SQLCartStore {
	return &SQLCartStore{db: db}
}

// AddItem upserts a cart line; adding an item already in the cart
// accumulates its quantity.
func (s *SQLCartStore) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, userID, productID, quantity)
	return err
}

func (s *SQLCartStore) Get(ctx context.Context, userID int64) (models.Cart, error) {
	items := []models.CartItem{}

	err := s.db.SelectContext(ctx, &items, `
		SELECT ci.product_id, p.name, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id=$1
		ORDER BY ci.product_id
	`, userID)
	if err != nil {
		return models.Cart{}, err
	}

	return models.Cart{
		UserID: userID,
		Items:  items,
		Total:  models.TotalPrice(items),
	}, nil
}

func (s *SQLCartStore) RemoveItem(ctx context.Context, userID, productID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2
	`, userID, productID)
	return err
}
