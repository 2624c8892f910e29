package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/shoply/internal/store"
	"github.com/vaughan-dsouza/shoply/internal/utils"
)

type CartHandler struct {
	Carts store.CartStore
	Log   zerolog.Logger
}

func NewCartHandler(d Deps) *CartHandler {
	return &CartHandler{Carts: d.Carts, Log: d.Log}
}

type cartItemReq struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// ---------------------- ADD ----------------------

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	if err := h.Carts.AddItem(r.Context(), req.UserID, req.ProductID, req.Quantity); err != nil {
		h.cartError(w, err)
		return
	}

	cart, err := h.Carts.Get(r.Context(), req.UserID)
	if err != nil {
		h.cartError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product added to cart successfully",
		"cart":    cart,
	})
}

// ---------------------- GET ----------------------

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)

	cart, err := h.Carts.Get(r.Context(), userID)
	if err != nil {
		h.cartError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"cart": cart})
}

// ---------------------- REMOVE ----------------------

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.Carts.RemoveItem(r.Context(), req.UserID, req.ProductID); err != nil {
		h.cartError(w, err)
		return
	}

	cart, err := h.Carts.Get(r.Context(), req.UserID)
	if err != nil {
		h.cartError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product removed from cart",
		"cart":    cart,
	})
}

func (h *CartHandler) cartError(w http.ResponseWriter, err error) {
	h.Log.Error().Err(err).Msg("cart operation failed")
	utils.JSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
}
