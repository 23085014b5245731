package service

import (
	"context"
	"errors"
	"testing"

	"mediconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	listFn       func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		listFn:       func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type doctorRepoStub struct {
	getByUserIDFn  func(context.Context, uint) (*models.Doctor, error)
	createFn       func(context.Context, *models.Doctor) error
	listVerifiedFn func(context.Context, int, int) ([]models.Doctor, error)
	listPendingFn  func(context.Context) ([]models.PendingDoctor, error)
	approveFn      func(context.Context, uint) error
	rejectFn       func(context.Context, uint, string) error
}

func (s *doctorRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Doctor, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *doctorRepoStub) Create(ctx context.Context, doctor *models.Doctor) error {
	return s.createFn(ctx, doctor)
}
func (s *doctorRepoStub) ListVerified(ctx context.Context, limit, offset int) ([]models.Doctor, error) {
	return s.listVerifiedFn(ctx, limit, offset)
}
func (s *doctorRepoStub) ListPending(ctx context.Context) ([]models.PendingDoctor, error) {
	return s.listPendingFn(ctx)
}
func (s *doctorRepoStub) Approve(ctx context.Context, doctorID uint) error {
	return s.approveFn(ctx, doctorID)
}
func (s *doctorRepoStub) Reject(ctx context.Context, doctorID uint, reason string) error {
	return s.rejectFn(ctx, doctorID, reason)
}

func noopDoctorRepo() *doctorRepoStub {
	return &doctorRepoStub{
		getByUserIDFn:  func(context.Context, uint) (*models.Doctor, error) { return nil, nil },
		createFn:       func(context.Context, *models.Doctor) error { return nil },
		listVerifiedFn: func(context.Context, int, int) ([]models.Doctor, error) { return nil, nil },
		listPendingFn:  func(context.Context) ([]models.PendingDoctor, error) { return nil, nil },
		approveFn:      func(context.Context, uint) error { return nil },
		rejectFn:       func(context.Context, uint, string) error { return nil },
	}
}

type communityRepoStub struct {
	listFn         func(context.Context) ([]models.Community, error)
	getByIDFn      func(context.Context, uint) (*models.Community, error)
	createFn       func(context.Context, *models.Community, uint) error
	getMemberFn    func(context.Context, uint, uint) (*models.CommunityMember, error)
	addMemberFn    func(context.Context, uint, uint, models.CommunityMemberRole) error
	removeMemberFn func(context.Context, uint, uint) error
	listPostsFn    func(context.Context, uint, int, int) ([]models.CommunityPost, error)
	createPostFn   func(context.Context, *models.CommunityPost) error
}

func (s *communityRepoStub) List(ctx context.Context) ([]models.Community, error) {
	return s.listFn(ctx)
}
func (s *communityRepoStub) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	return s.getByIDFn(ctx, id)
}
func (s *communityRepoStub) Create(ctx context.Context, community *models.Community, creatorID uint) error {
	return s.createFn(ctx, community, creatorID)
}
func (s *communityRepoStub) GetMember(ctx context.Context, communityID, userID uint) (*models.CommunityMember, error) {
	return s.getMemberFn(ctx, communityID, userID)
}
func (s *communityRepoStub) AddMember(ctx context.Context, communityID, userID uint, role models.CommunityMemberRole) error {
	return s.addMemberFn(ctx, communityID, userID, role)
}
func (s *communityRepoStub) RemoveMember(ctx context.Context, communityID, userID uint) error {
	return s.removeMemberFn(ctx, communityID, userID)
}
func (s *communityRepoStub) ListPosts(ctx context.Context, communityID uint, limit, offset int) ([]models.CommunityPost, error) {
	return s.listPostsFn(ctx, communityID, limit, offset)
}
func (s *communityRepoStub) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	return s.createPostFn(ctx, post)
}

func noopCommunityRepo() *communityRepoStub {
	return &communityRepoStub{
		listFn:         func(context.Context) ([]models.Community, error) { return nil, nil },
		getByIDFn:      func(context.Context, uint) (*models.Community, error) { return &models.Community{}, nil },
		createFn:       func(context.Context, *models.Community, uint) error { return nil },
		getMemberFn:    func(context.Context, uint, uint) (*models.CommunityMember, error) { return nil, nil },
		addMemberFn:    func(context.Context, uint, uint, models.CommunityMemberRole) error { return nil },
		removeMemberFn: func(context.Context, uint, uint) error { return nil },
		listPostsFn:    func(context.Context, uint, int, int) ([]models.CommunityPost, error) { return nil, nil },
		createPostFn:   func(context.Context, *models.CommunityPost) error { return nil },
	}
}

// assertAppErrorCode asserts that err is an AppError carrying the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
