package server

import (
	"mediconnect/internal/models"
	"mediconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{"user": user.Public()}

	// A doctor's own profile includes the verification state so the
	// client can show pending/rejected banners.
	doctor, err := s.doctorRepo.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if doctor != nil {
		resp["doctor"] = doctor
	}

	return c.JSON(resp)
}

// UpdateMyProfile handles PUT /api/users/me. Only display fields are
// editable; email, password, and role are not.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FullName  string `json:"fullName"`
		AvatarURL string `json:"avatarUrl"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:    userID,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user.Public()})
}
