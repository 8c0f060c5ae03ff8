package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/saffron-menu/internal/config"
	"github.com/Lixing-Zhang/saffron-menu/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the catalog API routes and middleware
func NewRouter(cfg config.CORSConfig, health *HealthHandler, menu *MenuHandler, quote *QuoteHandler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menu.GetMenu)
		r.Get("/menu/{categoryId}", menu.GetCategory)
		r.Get("/item/{itemId}", menu.GetItem)
		r.Post("/quote", quote.CreateQuote)
	})

	return r
}
