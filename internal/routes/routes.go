package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hawaco/booking-backend/internal/config"
	"github.com/hawaco/booking-backend/internal/flow"
	"github.com/hawaco/booking-backend/internal/handlers"
	"github.com/hawaco/booking-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, cfg *config.Config, store storage.SessionStore, engine *flow.Engine) {
	chatHandler := handlers.NewChatHandler(engine)
	healthHandler := handlers.NewHealthHandler(cfg, store)

	app.Post("/chat", chatHandler.HandleChat)
	app.Get("/health", healthHandler.HandleHealth)

	// Front-end chat client
	app.Static("/", cfg.StaticDir)
}
