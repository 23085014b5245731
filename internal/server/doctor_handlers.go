package server

import (
	"mediconnect/internal/models"
	"mediconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateDoctor handles POST /api/doctors. Only accounts with the doctor
// role may register a profile; the new profile always starts pending.
func (s *Server) CreateDoctor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Specialization  string  `json:"specialization"`
		LicenseNumber   string  `json:"license_number"`
		Bio             string  `json:"bio"`
		YearsExperience int     `json:"years_experience"`
		ConsultationFee float64 `json:"consultation_fee"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	doctor, err := s.doctorService.CreateProfile(c.UserContext(), service.CreateDoctorInput{
		UserID:          userID,
		Specialization:  req.Specialization,
		LicenseNumber:   req.LicenseNumber,
		Bio:             req.Bio,
		YearsExperience: req.YearsExperience,
		ConsultationFee: req.ConsultationFee,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"doctor": doctor})
}

// GetDoctors handles GET /api/doctors. Only approved doctors appear in
// the public directory.
func (s *Server) GetDoctors(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	doctors, err := s.doctorService.ListVerified(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"doctors": doctors})
}

// GetMyDoctorProfile handles GET /api/doctors/me.
func (s *Server) GetMyDoctorProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	doctor, err := s.doctorService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"doctor": doctor})
}
