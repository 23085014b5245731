package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssistantApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Post("/assistant/messages", func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	}, s.AssistantMessage)
	return app
}

func TestAssistantMessage(t *testing.T) {
	s := newMockedServer(new(MockUserRepository), new(MockDoctorRepository), new(MockCommunityRepository))
	app := newAssistantApp(s)

	t.Run("classifies and replies", func(t *testing.T) {
		resp := postJSON(t, app, "/assistant/messages", map[string]any{
			"message": "I need to book an appointment",
		})
		body := decodeBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "appointment", body["category"])
		assert.NotEmpty(t, body["reply"])
	})

	t.Run("emergency escalates", func(t *testing.T) {
		resp := postJSON(t, app, "/assistant/messages", map[string]any{
			"message": "chest pain and I want to book an appointment",
		})
		body := decodeBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "emergency", body["category"])
	})

	t.Run("empty message", func(t *testing.T) {
		resp := postJSON(t, app, "/assistant/messages", map[string]any{"message": "  "})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("oversized message", func(t *testing.T) {
		resp := postJSON(t, app, "/assistant/messages", map[string]any{
			"message": strings.Repeat("a", 2001),
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("nonsense falls back", func(t *testing.T) {
		resp := postJSON(t, app, "/assistant/messages", map[string]any{
			"message": "flibbertigibbet",
		})
		body := decodeBody(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "fallback", body["category"])
	})
}
