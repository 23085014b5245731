// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole defines the role tag assigned to a user at signup.
type UserRole string

const (
	// UserRolePatient is the default role for new accounts.
	UserRolePatient UserRole = "patient"
	// UserRoleDoctor marks accounts that may create a doctor profile.
	UserRoleDoctor UserRole = "doctor"
	// UserRoleAdmin marks accounts with access to the admin surface.
	UserRoleAdmin UserRole = "admin"
)

// ValidSignupRole reports whether a role may be chosen at signup.
// Admin accounts are provisioned out of band, never self-assigned.
func ValidSignupRole(r UserRole) bool {
	return r == UserRolePatient || r == UserRoleDoctor
}

// User represents an account on the MediConnect platform.
// Role is immutable after creation.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FullName  string         `json:"fullName"`
	AvatarURL string         `json:"avatarUrl"`
	Role      UserRole       `gorm:"type:varchar(20);not null;default:'patient'" json:"userType"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Doctor    *Doctor        `gorm:"foreignKey:ID" json:"doctor,omitempty"`
}

// PublicUser is the subset of user fields safe to return from the API.
type PublicUser struct {
	ID        uint     `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"fullName"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Role      UserRole `json:"userType"`
}

// Public projects the user onto its API-safe representation.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}
