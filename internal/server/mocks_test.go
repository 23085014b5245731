package server

import (
	"context"

	"mediconnect/internal/assistant"
	"mediconnect/internal/config"
	"mediconnect/internal/models"
	"mediconnect/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the repository.UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockDoctorRepository is a mock of the repository.DoctorRepository interface.
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) GetByUserID(ctx context.Context, userID uint) (*models.Doctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) ListVerified(ctx context.Context, limit, offset int) ([]models.Doctor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) ListPending(ctx context.Context) ([]models.PendingDoctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PendingDoctor), args.Error(1)
}

func (m *MockDoctorRepository) Approve(ctx context.Context, doctorID uint) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func (m *MockDoctorRepository) Reject(ctx context.Context, doctorID uint, reason string) error {
	args := m.Called(ctx, doctorID, reason)
	return args.Error(0)
}

// MockCommunityRepository is a mock of the repository.CommunityRepository interface.
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) List(ctx context.Context) ([]models.Community, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Community), args.Error(1)
}

func (m *MockCommunityRepository) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Community), args.Error(1)
}

func (m *MockCommunityRepository) Create(ctx context.Context, community *models.Community, creatorID uint) error {
	args := m.Called(ctx, community, creatorID)
	return args.Error(0)
}

func (m *MockCommunityRepository) GetMember(ctx context.Context, communityID, userID uint) (*models.CommunityMember, error) {
	args := m.Called(ctx, communityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityMember), args.Error(1)
}

func (m *MockCommunityRepository) AddMember(ctx context.Context, communityID, userID uint, role models.CommunityMemberRole) error {
	args := m.Called(ctx, communityID, userID, role)
	return args.Error(0)
}

func (m *MockCommunityRepository) RemoveMember(ctx context.Context, communityID, userID uint) error {
	args := m.Called(ctx, communityID, userID)
	return args.Error(0)
}

func (m *MockCommunityRepository) ListPosts(ctx context.Context, communityID uint, limit, offset int) ([]models.CommunityPost, error) {
	args := m.Called(ctx, communityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommunityPost), args.Error(1)
}

func (m *MockCommunityRepository) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// newMockedServer builds a Server wired to the given mocks, skipping the
// database and Redis entirely.
func newMockedServer(users *MockUserRepository, doctors *MockDoctorRepository, communities *MockCommunityRepository) *Server {
	engine, err := assistant.NewEngine()
	if err != nil {
		panic(err)
	}

	s := &Server{
		config:        &config.Config{JWTSecret: "test_secret", Env: "test"},
		userRepo:      users,
		doctorRepo:    doctors,
		communityRepo: communities,
		assistant:     engine,
	}
	s.userService = service.NewUserService(users)
	s.doctorService = service.NewDoctorService(doctors, users)
	s.communityService = service.NewCommunityService(communities)
	return s
}
