package handlers

import (
	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/shoply/internal/auth"
	"github.com/vaughan-dsouza/shoply/internal/store"
)

type Handler struct {
	Auth     *AuthHandler
	Cart     *CartHandler
	Products *ProductHandler
}

// Deps carries everything the handlers need; wired once in main and
// injected so each piece stays testable in isolation.
type Deps struct {
	Users      store.UserStore
	Products   store.ProductStore
	Carts      store.CartStore
	Hasher     auth.Hasher
	Tokens     *auth.TokenManager
	Limiter    *auth.RateLimiter
	AdminEmail string
	UploadDir  string
	Log        zerolog.Logger
}

func New(d Deps) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(d),
		Cart:     NewCartHandler(d),
		Products: NewProductHandler(d),
	}
}
