package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newDoctorApp wires the doctor endpoints with the calling user forced
// into locals, bypassing the auth middleware.
func newDoctorApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	asUser := func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
	app.Post("/doctors", asUser, s.CreateDoctor)
	app.Get("/doctors", s.GetDoctors)
	app.Get("/admin/doctors/pending", asUser, s.GetPendingDoctors)
	app.Post("/admin/doctors/:id/approve", asUser, s.ApproveDoctor)
	app.Post("/admin/doctors/:id/reject", asUser, s.RejectDoctor)
	return app
}

func TestCreateDoctor(t *testing.T) {
	validBody := map[string]any{
		"specialization":   "Dermatology",
		"license_number":   "MD-9912",
		"years_experience": 8,
		"consultation_fee": 90,
	}

	t.Run("doctor account creates a pending profile", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByID", mock.Anything, uint(3)).
			Return(&models.User{ID: 3, Role: models.UserRoleDoctor}, nil)
		doctors := new(MockDoctorRepository)
		doctors.On("GetByUserID", mock.Anything, uint(3)).Return(nil, nil)
		doctors.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := newMockedServer(users, doctors, new(MockCommunityRepository))
		app := newDoctorApp(s, 3)

		resp := postJSON(t, app, "/doctors", validBody)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		doctors.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("patient account is forbidden", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByID", mock.Anything, uint(4)).
			Return(&models.User{ID: 4, Role: models.UserRolePatient}, nil)

		s := newMockedServer(users, new(MockDoctorRepository), new(MockCommunityRepository))
		app := newDoctorApp(s, 4)

		resp := postJSON(t, app, "/doctors", validBody)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("second profile is a conflict", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByID", mock.Anything, uint(3)).
			Return(&models.User{ID: 3, Role: models.UserRoleDoctor}, nil)
		doctors := new(MockDoctorRepository)
		doctors.On("GetByUserID", mock.Anything, uint(3)).
			Return(&models.Doctor{ID: 3}, nil)

		s := newMockedServer(users, doctors, new(MockCommunityRepository))
		app := newDoctorApp(s, 3)

		resp := postJSON(t, app, "/doctors", validBody)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestGetDoctors_OnlyVerified(t *testing.T) {
	doctors := new(MockDoctorRepository)
	doctors.On("ListVerified", mock.Anything, 20, 0).Return([]models.Doctor{
		{ID: 1, Specialization: "Cardiology", IsVerified: true, VerificationStatus: models.VerificationApproved},
	}, nil)

	s := newMockedServer(new(MockUserRepository), doctors, new(MockCommunityRepository))
	app := newDoctorApp(s, 0)

	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list, ok := body["doctors"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	doctors.AssertCalled(t, "ListVerified", mock.Anything, 20, 0)
}

func TestApproveDoctor(t *testing.T) {
	t.Run("pending profile is approved", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		doctors.On("GetByUserID", mock.Anything, uint(8)).
			Return(&models.Doctor{ID: 8, VerificationStatus: models.VerificationPending}, nil)
		doctors.On("Approve", mock.Anything, uint(8)).Return(nil)

		s := newMockedServer(new(MockUserRepository), doctors, new(MockCommunityRepository))
		app := newDoctorApp(s, 1)

		resp := postJSON(t, app, "/admin/doctors/8/approve", nil)
		body := decodeBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		doctor := body["doctor"].(map[string]any)
		assert.Equal(t, "approved", doctor["verification_status"])
		assert.Equal(t, true, doctor["is_verified"])
	})

	t.Run("rejected profile cannot be approved", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		doctors.On("GetByUserID", mock.Anything, uint(8)).
			Return(&models.Doctor{ID: 8, VerificationStatus: models.VerificationRejected}, nil)

		s := newMockedServer(new(MockUserRepository), doctors, new(MockCommunityRepository))
		app := newDoctorApp(s, 1)

		resp := postJSON(t, app, "/admin/doctors/8/approve", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		s := newMockedServer(new(MockUserRepository), new(MockDoctorRepository), new(MockCommunityRepository))
		app := newDoctorApp(s, 1)

		req := httptest.NewRequest(http.MethodPost, "/admin/doctors/abc/approve", bytes.NewReader(nil))
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRejectDoctor(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		s := newMockedServer(new(MockUserRepository), doctors, new(MockCommunityRepository))
		app := newDoctorApp(s, 1)

		resp := postJSON(t, app, "/admin/doctors/8/reject", map[string]any{"reason": ""})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		doctors.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stores the reason", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		doctors.On("GetByUserID", mock.Anything, uint(8)).
			Return(&models.Doctor{ID: 8, VerificationStatus: models.VerificationPending}, nil)
		doctors.On("Reject", mock.Anything, uint(8), "License expired").Return(nil)

		s := newMockedServer(new(MockUserRepository), doctors, new(MockCommunityRepository))
		app := newDoctorApp(s, 1)

		resp := postJSON(t, app, "/admin/doctors/8/reject", map[string]any{"reason": "License expired"})
		body := decodeBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		doctor := body["doctor"].(map[string]any)
		assert.Equal(t, "rejected", doctor["verification_status"])
		assert.Equal(t, "License expired", doctor["rejection_reason"])
	})
}

func TestGetPendingDoctors(t *testing.T) {
	doctors := new(MockDoctorRepository)
	doctors.On("ListPending", mock.Anything).Return([]models.PendingDoctor{
		{ID: 2, FullName: "Dr. New", Email: "new@example.com", VerificationStatus: models.VerificationPending},
	}, nil)

	s := newMockedServer(new(MockUserRepository), doctors, new(MockCommunityRepository))
	app := newDoctorApp(s, 1)

	req := httptest.NewRequest(http.MethodGet, "/admin/doctors/pending", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["doctors"].([]any)
	require.Len(t, list, 1)
	entry := list[0].(map[string]any)
	assert.Equal(t, "new@example.com", entry["email"])
}
