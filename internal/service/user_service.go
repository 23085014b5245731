// Package service contains the business logic between HTTP handlers and
// the repository layer.
package service

import (
	"context"

	"mediconnect/internal/models"
	"mediconnect/internal/repository"
	"mediconnect/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the editable profile fields. Email, password,
// and role are not editable through this path.
type UpdateProfileInput struct {
	UserID    uint
	FullName  string
	AvatarURL string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		if err := validation.ValidateFullName(in.FullName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FullName = in.FullName
	}
	if in.AvatarURL != "" {
		const maxAvatarLen = 500
		if len(in.AvatarURL) > maxAvatarLen {
			return nil, models.NewValidationError("Avatar URL too long (max 500 characters)")
		}
		user.AvatarURL = in.AvatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
