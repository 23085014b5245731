package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mediconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	asUser := func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
	app.Get("/users/me", asUser, s.GetMyProfile)
	app.Put("/users/me", asUser, s.UpdateMyProfile)
	return app
}

func TestGetMyProfile(t *testing.T) {
	t.Run("patient profile has no doctor section", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByID", mock.Anything, uint(5)).
			Return(&models.User{ID: 5, Email: "pat@example.com", Role: models.UserRolePatient}, nil)
		doctors := new(MockDoctorRepository)
		doctors.On("GetByUserID", mock.Anything, uint(5)).Return(nil, nil)

		s := newMockedServer(users, doctors, new(MockCommunityRepository))
		app := newUserApp(s, 5)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, body, "doctor")
		user := body["user"].(map[string]any)
		assert.Equal(t, "pat@example.com", user["email"])
		assert.NotContains(t, user, "password")
	})

	t.Run("doctor profile includes verification state", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByID", mock.Anything, uint(6)).
			Return(&models.User{ID: 6, Email: "doc@example.com", Role: models.UserRoleDoctor}, nil)
		doctors := new(MockDoctorRepository)
		doctors.On("GetByUserID", mock.Anything, uint(6)).
			Return(&models.Doctor{ID: 6, VerificationStatus: models.VerificationPending}, nil)

		s := newMockedServer(users, doctors, new(MockCommunityRepository))
		app := newUserApp(s, 6)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		doctor := body["doctor"].(map[string]any)
		assert.Equal(t, "pending", doctor["verification_status"])
	})
}

func TestUpdateMyProfile(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, uint(5)).
		Return(&models.User{ID: 5, Email: "pat@example.com", FullName: "Old", Role: models.UserRolePatient}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := newMockedServer(users, new(MockDoctorRepository), new(MockCommunityRepository))
	app := newUserApp(s, 5)

	resp := putJSON(t, app, "/users/me", map[string]any{"fullName": "New Name"})
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, "New Name", user["fullName"])
	assert.Equal(t, "pat@example.com", user["email"], "email is immutable here")
}

func TestGetUsers_ProjectsPublicFields(t *testing.T) {
	users := new(MockUserRepository)
	users.On("List", mock.Anything, 50, 0).Return([]models.User{
		{ID: 1, Email: "admin@mediconnect.local", Password: "hash", Role: models.UserRoleAdmin},
		{ID: 2, Email: "pat@example.com", Password: "hash", Role: models.UserRolePatient},
	}, nil)

	s := newMockedServer(users, new(MockDoctorRepository), new(MockCommunityRepository))
	app := fiber.New()
	app.Get("/admin/users", s.GetUsers)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["users"].([]any)
	require.Len(t, list, 2)
	first := list[0].(map[string]any)
	assert.Equal(t, "admin@mediconnect.local", first["email"])
	assert.NotContains(t, first, "password")
}
