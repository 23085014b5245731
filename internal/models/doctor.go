package models

import "time"

// VerificationStatus defines the lifecycle state of a doctor profile.
type VerificationStatus string

const (
	// VerificationPending indicates the profile is awaiting admin review.
	VerificationPending VerificationStatus = "pending"
	// VerificationApproved indicates the profile was accepted.
	VerificationApproved VerificationStatus = "approved"
	// VerificationRejected indicates the profile was declined.
	VerificationRejected VerificationStatus = "rejected"
)

// Doctor is the one-to-one professional extension of a user account.
// The primary key is the owning user's ID. Every profile starts pending;
// the transition to approved or rejected is one-way.
type Doctor struct {
	ID                 uint               `gorm:"primaryKey;autoIncrement:false" json:"id"`
	User               *User              `gorm:"foreignKey:ID" json:"user,omitempty"`
	Specialization     string             `gorm:"size:120;not null" json:"specialization"`
	LicenseNumber      string             `gorm:"size:64;not null;uniqueIndex" json:"license_number"`
	Bio                string             `gorm:"type:text" json:"bio"`
	YearsExperience    int                `json:"years_experience"`
	ConsultationFee    float64            `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	IsVerified         bool               `gorm:"not null;default:false" json:"is_verified"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"verification_status"`
	RejectionReason    string             `gorm:"type:text" json:"rejection_reason,omitempty"`
	DocumentsUploaded  bool               `gorm:"not null;default:false" json:"documents_uploaded"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// PendingDoctor is the joined doctor+user projection served to admins.
type PendingDoctor struct {
	ID                 uint               `json:"id"`
	FullName           string             `json:"full_name"`
	Email              string             `json:"email"`
	Specialization     string             `json:"specialization"`
	LicenseNumber      string             `json:"license_number"`
	Bio                string             `json:"bio"`
	YearsExperience    int                `json:"years_experience"`
	ConsultationFee    float64            `json:"consultation_fee"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
}
