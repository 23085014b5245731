package server

import (
	"strings"

	"mediconnect/internal/models"
	"mediconnect/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// AssistantMessage handles POST /api/assistant/messages. The message is
// classified into a category and answered from canned templates; nothing
// is persisted.
func (s *Server) AssistantMessage(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Message) == "" {
		return respondError(c, models.NewValidationError("Message is required"))
	}
	const maxMessageLen = 2000
	if len(req.Message) > maxMessageLen {
		return respondError(c, models.NewValidationError("Message too long (max 2000 characters)"))
	}

	category, reply := s.assistant.Reply(req.Message)
	observability.AssistantMessages.WithLabelValues(string(category)).Inc()

	return c.JSON(fiber.Map{
		"category": category,
		"reply":    reply,
	})
}
