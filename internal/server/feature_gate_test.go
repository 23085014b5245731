package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mediconnect/internal/featureflags"
	"mediconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequireFeature(t *testing.T) {
	t.Run("disabled assistant rejects the message", func(t *testing.T) {
		s := newMockedServer(new(MockUserRepository), new(MockDoctorRepository), new(MockCommunityRepository))
		s.featureFlags = featureflags.NewManager("assistant=off")

		app := fiber.New()
		app.Post("/assistant/messages", s.RequireFeature(featureflags.FlagAssistant), s.AssistantMessage)

		resp := postJSON(t, app, "/assistant/messages", map[string]any{"message": "hello"})
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", body["code"])
	})

	t.Run("enabled assistant answers", func(t *testing.T) {
		s := newMockedServer(new(MockUserRepository), new(MockDoctorRepository), new(MockCommunityRepository))
		s.featureFlags = featureflags.NewManager("")

		app := fiber.New()
		app.Post("/assistant/messages", s.RequireFeature(featureflags.FlagAssistant), s.AssistantMessage)

		resp := postJSON(t, app, "/assistant/messages", map[string]any{"message": "hello"})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("disabled doctor signup blocks profile creation", func(t *testing.T) {
		users := new(MockUserRepository)
		doctors := new(MockDoctorRepository)
		s := newMockedServer(users, doctors, new(MockCommunityRepository))
		s.featureFlags = featureflags.NewManager("doctor_signup=off")

		app := fiber.New()
		asUser := func(c *fiber.Ctx) error {
			c.Locals("userID", uint(3))
			return c.Next()
		}
		app.Post("/doctors", asUser, s.RequireFeature(featureflags.FlagDoctorSignup), s.CreateDoctor)

		resp := postJSON(t, app, "/doctors", map[string]any{
			"specialization": "Dermatology",
			"license_number": "MD-9912",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("disabled community creation leaves browsing open", func(t *testing.T) {
		communities := new(MockCommunityRepository)
		communities.On("List", mock.Anything).Return([]models.Community{}, nil)
		s := newMockedServer(new(MockUserRepository), new(MockDoctorRepository), communities)
		s.featureFlags = featureflags.NewManager("community_creation=off")

		app := fiber.New()
		app.Get("/communities", s.RequireFeature(featureflags.FlagCommunities), s.GetCommunities)
		app.Post("/communities", s.RequireFeature(featureflags.FlagCommunities),
			s.RequireFeature(featureflags.FlagCommunityCreation), s.CreateCommunity)

		req := httptest.NewRequest(http.MethodGet, "/communities", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		created := postJSON(t, app, "/communities", map[string]any{"name": "Heart Health", "category": "cardiology"})
		defer func() { _ = created.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, created.StatusCode)
	})
}
