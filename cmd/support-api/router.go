// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/stylebot-ai/support-engine/cmd/support-api/handlers"
	"github.com/stylebot-ai/support-engine/cmd/support-api/middleware"
	"github.com/stylebot-ai/support-engine/internal/cache"
	"github.com/stylebot-ai/support-engine/internal/chat"
	"github.com/stylebot-ai/support-engine/internal/config"
	"github.com/stylebot-ai/support-engine/internal/observability"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, service *chat.Service, sessions cache.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	chatHandler := handlers.NewChatHandler(logger, service, sessions, cfg.Cache.TTL)
	trainingHandler := handlers.NewTrainingHandler(logger, service, cfg.Data)
	catalogHandler := handlers.NewCatalogHandler(logger, service)
	healthHandler := handlers.NewHealthHandler(logger, service, sessions)

	r.Get("/health", healthHandler.Health)
	r.Get("/health/detailed", healthHandler.Detailed)

	r.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/", chatHandler.Message)
			r.Get("/welcome", chatHandler.Welcome)
		})

		r.Route("/training", func(r chi.Router) {
			r.Get("/status", trainingHandler.Status)
			r.Post("/retrain", trainingHandler.Retrain)
			r.Get("/knowledge", trainingHandler.Knowledge)
			r.Get("/scenarios", trainingHandler.Scenarios)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/search", catalogHandler.SearchProducts)
			r.Get("/top", catalogHandler.TopProducts)
		})

		r.Get("/orders/{orderID}", catalogHandler.OrderStatus)
		r.Get("/inventory", catalogHandler.Inventory)
	})

	return r
}
