package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/shoply/internal/auth"
	"github.com/vaughan-dsouza/shoply/internal/config"
	"github.com/vaughan-dsouza/shoply/internal/db"
	"github.com/vaughan-dsouza/shoply/internal/handlers"
	"github.com/vaughan-dsouza/shoply/internal/middleware"
	"github.com/vaughan-dsouza/shoply/internal/models"
	"github.com/vaughan-dsouza/shoply/internal/store"
	"github.com/vaughan-dsouza/shoply/internal/utils"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}

	dbConn, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer dbConn.Close()

	if err := db.Migrate(context.Background(), dbConn); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("upload dir")
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager")
	}

	h := handlers.New(handlers.Deps{
		Users:      store.NewUserStore(dbConn),
		Products:   store.NewProductStore(dbConn),
		Carts:      store.NewCartStore(dbConn),
		Hasher:     auth.NewHasher(),
		Tokens:     tokens,
		Limiter:    auth.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax),
		AdminEmail: cfg.AdminEmail,
		UploadDir:  cfg.UploadDir,
		Log:        log,
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	// Auth
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	// Cart
	r.Route("/api/cart", func(r chi.Router) {
		r.Post("/add", h.Cart.AddToCart)
		r.Get("/{userID}", h.Cart.GetCart)
		r.Delete("/remove", h.Cart.RemoveFromCart)
	})

	// Products
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.Products.ListProducts)
		r.Post("/add", h.Products.CreateProduct)
		r.Put("/{id}", h.Products.UpdateProduct)
		r.Delete("/{id}", h.Products.DeleteProduct)
	})

	// Gated probes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireJWT(tokens))

		r.Get("/api/protected", func(w http.ResponseWriter, _ *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{"msg": "Access granted"})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authorize(models.RoleAdmin))
			r.Get("/api/admin", func(w http.ResponseWriter, _ *http.Request) {
				utils.JSON(w, http.StatusOK, map[string]string{"msg": "Admin access granted"})
			})
		})
	})

	// Uploaded product images
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
