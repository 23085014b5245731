package repository

import (
	"context"
	"errors"

	"mediconnect/internal/models"
	"mediconnect/internal/observability"

	"gorm.io/gorm"
)

// DoctorRepository defines persistence operations for doctor profiles.
type DoctorRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	ListVerified(ctx context.Context, limit, offset int) ([]models.Doctor, error)
	ListPending(ctx context.Context) ([]models.PendingDoctor, error)
	Approve(ctx context.Context, doctorID uint) error
	Reject(ctx context.Context, doctorID uint, reason string) error
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository returns a new DoctorRepository implementation.
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) GetByUserID(ctx context.Context, userID uint) (*models.Doctor, error) {
	defer observability.TrackQuery("select", "doctors")()

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	defer observability.TrackQuery("insert", "doctors")()

	// Every profile enters review; callers cannot pre-set the outcome.
	doctor.VerificationStatus = models.VerificationPending
	doctor.IsVerified = false
	doctor.RejectionReason = ""

	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Doctor profile or license number already registered")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *doctorRepository) ListVerified(ctx context.Context, limit, offset int) ([]models.Doctor, error) {
	defer observability.TrackQuery("select", "doctors")()

	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("verification_status = ?", models.VerificationApproved).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&doctors).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListPending(ctx context.Context) ([]models.PendingDoctor, error) {
	defer observability.TrackQuery("select", "doctors")()

	var pending []models.PendingDoctor
	if err := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Select(`doctors.id, users.full_name, users.email, doctors.specialization,
			doctors.license_number, doctors.bio, doctors.years_experience,
			doctors.consultation_fee, doctors.verification_status, doctors.created_at`).
		Joins("INNER JOIN users ON users.id = doctors.id").
		Where("doctors.verification_status = ?", models.VerificationPending).
		Order("doctors.created_at ASC").
		Scan(&pending).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pending, nil
}

// Approve marks the doctor approved and verified in a single UPDATE.
// Approving an already-approved doctor is a no-op with the same end state.
func (r *doctorRepository) Approve(ctx context.Context, doctorID uint) error {
	defer observability.TrackQuery("update", "doctors")()

	res := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", doctorID).
		Updates(map[string]any{
			"verification_status": models.VerificationApproved,
			"is_verified":         true,
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Doctor", doctorID)
	}
	return nil
}

// Reject marks the doctor rejected and stores the reason. Reason emptiness is
// enforced by the service layer.
func (r *doctorRepository) Reject(ctx context.Context, doctorID uint, reason string) error {
	defer observability.TrackQuery("update", "doctors")()

	res := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", doctorID).
		Updates(map[string]any{
			"verification_status": models.VerificationRejected,
			"rejection_reason":    reason,
			"is_verified":         false,
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Doctor", doctorID)
	}
	return nil
}
