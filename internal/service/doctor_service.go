package service

import (
	"context"
	"strings"

	"mediconnect/internal/models"
	"mediconnect/internal/observability"
	"mediconnect/internal/repository"
	"mediconnect/internal/validation"
)

type DoctorService struct {
	doctorRepo repository.DoctorRepository
	userRepo   repository.UserRepository
}

// CreateDoctorInput carries the fields a doctor submits when registering
// a professional profile.
type CreateDoctorInput struct {
	UserID          uint
	Specialization  string
	LicenseNumber   string
	Bio             string
	YearsExperience int
	ConsultationFee float64
}

func NewDoctorService(doctorRepo repository.DoctorRepository, userRepo repository.UserRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo, userRepo: userRepo}
}

// CreateProfile registers a doctor profile for the given user. The account
// must carry the doctor role and must not already have a profile. The new
// profile always enters the pending state.
func (s *DoctorService) CreateProfile(ctx context.Context, in CreateDoctorInput) (*models.Doctor, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.UserRoleDoctor {
		return nil, models.NewForbiddenError("Only doctor accounts can create a doctor profile")
	}

	if strings.TrimSpace(in.Specialization) == "" {
		return nil, models.NewValidationError("Specialization is required")
	}
	if err := validation.ValidateLicenseNumber(in.LicenseNumber); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.YearsExperience < 0 {
		return nil, models.NewValidationError("Years of experience cannot be negative")
	}
	if in.ConsultationFee < 0 {
		return nil, models.NewValidationError("Consultation fee cannot be negative")
	}

	existing, err := s.doctorRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Doctor profile already exists for this account")
	}

	doctor := &models.Doctor{
		ID:              in.UserID,
		Specialization:  strings.TrimSpace(in.Specialization),
		LicenseNumber:   strings.TrimSpace(in.LicenseNumber),
		Bio:             in.Bio,
		YearsExperience: in.YearsExperience,
		ConsultationFee: in.ConsultationFee,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) GetProfile(ctx context.Context, userID uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, models.NewNotFoundError("Doctor", userID)
	}
	return doctor, nil
}

// ListVerified returns approved doctors for the public directory.
func (s *DoctorService) ListVerified(ctx context.Context, limit, offset int) ([]models.Doctor, error) {
	return s.doctorRepo.ListVerified(ctx, limit, offset)
}

// ListPending returns profiles awaiting review, for the admin surface.
func (s *DoctorService) ListPending(ctx context.Context) ([]models.PendingDoctor, error) {
	return s.doctorRepo.ListPending(ctx)
}

// Approve marks a pending profile as approved. Approving an already
// approved profile is a no-op; a rejected profile cannot be approved.
func (s *DoctorService) Approve(ctx context.Context, doctorID uint) (*models.Doctor, error) {
	doctor, err := s.GetProfile(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	switch doctor.VerificationStatus {
	case models.VerificationApproved:
		return doctor, nil
	case models.VerificationRejected:
		return nil, models.NewConflictError("Doctor profile was already rejected")
	}

	if err := s.doctorRepo.Approve(ctx, doctorID); err != nil {
		return nil, err
	}
	observability.VerificationDecisions.WithLabelValues("approved").Inc()

	doctor.VerificationStatus = models.VerificationApproved
	doctor.IsVerified = true
	return doctor, nil
}

// Reject marks a pending profile as rejected with a reason. Rejecting an
// already rejected profile is a no-op; an approved profile cannot be
// rejected.
func (s *DoctorService) Reject(ctx context.Context, doctorID uint, reason string) (*models.Doctor, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, models.NewValidationError("Rejection reason is required")
	}

	doctor, err := s.GetProfile(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	switch doctor.VerificationStatus {
	case models.VerificationRejected:
		return doctor, nil
	case models.VerificationApproved:
		return nil, models.NewConflictError("Doctor profile was already approved")
	}

	if err := s.doctorRepo.Reject(ctx, doctorID, reason); err != nil {
		return nil, err
	}
	observability.VerificationDecisions.WithLabelValues("rejected").Inc()

	doctor.VerificationStatus = models.VerificationRejected
	doctor.RejectionReason = reason
	return doctor, nil
}
