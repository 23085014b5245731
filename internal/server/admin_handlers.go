package server

import (
	"mediconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPendingDoctors handles GET /api/admin/doctors/pending. It returns
// profiles awaiting review, joined with the owning account.
func (s *Server) GetPendingDoctors(c *fiber.Ctx) error {
	pending, err := s.doctorService.ListPending(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"doctors": pending})
}

// ApproveDoctor handles POST /api/admin/doctors/:id/approve. Approval is
// idempotent; a rejected profile cannot be approved.
func (s *Server) ApproveDoctor(c *fiber.Ctx) error {
	doctorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	doctor, err := s.doctorService.Approve(c.UserContext(), doctorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"doctor": doctor})
}

// RejectDoctor handles POST /api/admin/doctors/:id/reject. A reason is
// required; an approved profile cannot be rejected.
func (s *Server) RejectDoctor(c *fiber.Ctx) error {
	doctorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	doctor, err := s.doctorService.Reject(c.UserContext(), doctorID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"doctor": doctor})
}

// GetUsers handles GET /api/admin/users with limit/offset pagination.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 50)

	users, err := s.userService.ListUsers(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}

	return c.JSON(fiber.Map{"users": public})
}

// GetFeatureFlags returns configured feature flags and their evaluated
// state for the current admin.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	if s.featureFlags == nil {
		return c.JSON(fiber.Map{
			"raw":       map[string]string{},
			"evaluated": map[string]bool{},
		})
	}

	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(userID),
	})
}
