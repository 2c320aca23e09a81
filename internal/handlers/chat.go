package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hawaco/booking-backend/internal/flow"
)

// ChatHandler handles the front-end chat endpoint
type ChatHandler struct {
	engine *flow.Engine
}

// NewChatHandler creates a new chat handler
func NewChatHandler(engine *flow.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// ChatRequest is the inbound message payload. Message is a pointer so
// a missing field is distinguishable from an empty string (the start
// sentinel aside, empty messages are still legal turns).
type ChatRequest struct {
	SessionID string  `json:"sessionId"`
	Message   *string `json:"message"`
}

// HandleChat processes one dialogue turn
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req ChatRequest

	if err := c.BodyParser(&req); err != nil || req.SessionID == "" || req.Message == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"reply": "خطأ في البيانات.",
			"done":  false,
		})
	}

	log.Printf("💬 Message from session %s: %s", req.SessionID, *req.Message)

	reply, done := h.engine.HandleTurn(c.UserContext(), req.SessionID, *req.Message)

	return c.JSON(fiber.Map{
		"reply": reply,
		"done":  done,
	})
}
