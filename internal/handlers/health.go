package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hawaco/booking-backend/internal/config"
	"github.com/hawaco/booking-backend/internal/storage"
)

// HealthHandler reports service status for monitoring
type HealthHandler struct {
	cfg   *config.Config
	store storage.SessionStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, store storage.SessionStore) *HealthHandler {
	return &HealthHandler{cfg: cfg, store: store}
}

// HandleHealth returns service status
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service":  "Hawa Co Booking Bot",
		"status":   "healthy",
		"sessions": h.store.Count(),
		"services": fiber.Map{
			"openai":  h.cfg.OpenAIKey != "",
			"twilio":  h.cfg.TwilioAccountSID != "",
			"webhook": h.cfg.WebhookURL != "",
		},
	})
}
