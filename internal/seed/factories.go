// Package seed creates development and demo data. Not for production.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"mediconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// All seeded accounts share one password so demo logins are easy.
const DemoPassword = "Passw0rd!"

var specializations = []string{
	"Cardiology", "Dermatology", "Pediatrics", "Neurology", "Oncology",
	"Psychiatry", "Orthopedics", "General Practice", "Endocrinology",
	"Gastroenterology",
}

var communityTemplates = []struct {
	Name        string
	Category    string
	Description string
}{
	{"Diabetes Support", "chronic-illness", "Day-to-day life with type 1 and type 2 diabetes."},
	{"Anxiety & Depression", "mental-health", "A safe space to talk about mental health."},
	{"Heart Healthy Eating", "nutrition", "Recipes and habits for cardiovascular health."},
	{"Couch to 5K", "fitness", "Getting moving again, one week at a time."},
	{"New Parents", "parenting", "Sleep schedules, feeding, and everything else."},
	{"Sober Together", "recovery", "Peer support for recovery journeys."},
	{"General Health Chat", "general", "Anything health related that fits nowhere else."},
}

// Factory builds domain entities and persists them.
type Factory struct {
	db           *gorm.DB
	rng          *rand.Rand
	passwordHash string
}

// NewFactory creates a Factory bound to the given DB. The demo password
// is hashed once and shared across all seeded users.
func NewFactory(db *gorm.DB) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	return &Factory{
		db:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hash),
	}, nil
}

// CreateUser persists a user with the given role and a unique fake email.
func (f *Factory) CreateUser(role models.UserRole) (*models.User, error) {
	user := &models.User{
		Email:     fmt.Sprintf("%s.%s@%s", gofakeit.FirstName(), gofakeit.LastName(), gofakeit.DomainName()),
		Password:  f.passwordHash,
		FullName:  gofakeit.Name(),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Role:      role,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAdmin persists the well-known demo admin account.
func (f *Factory) CreateAdmin() (*models.User, error) {
	admin := &models.User{
		Email:    "admin@mediconnect.local",
		Password: f.passwordHash,
		FullName: "Platform Admin",
		Role:     models.UserRoleAdmin,
	}
	if err := f.db.Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// CreateDoctorProfile persists a doctor profile for the given user in
// the given verification state.
func (f *Factory) CreateDoctorProfile(user *models.User, status models.VerificationStatus) (*models.Doctor, error) {
	doctor := &models.Doctor{
		ID:                 user.ID,
		Specialization:     specializations[f.rng.Intn(len(specializations))],
		LicenseNumber:      fmt.Sprintf("MD-%06d", f.rng.Intn(1000000)),
		Bio:                gofakeit.Paragraph(1, 2, 8, " "),
		YearsExperience:    1 + f.rng.Intn(30),
		ConsultationFee:    float64(40 + f.rng.Intn(18)*10),
		VerificationStatus: status,
		IsVerified:         status == models.VerificationApproved,
		DocumentsUploaded:  true,
	}
	if status == models.VerificationRejected {
		doctor.RejectionReason = "License could not be verified"
	}
	if err := f.db.Create(doctor).Error; err != nil {
		return nil, err
	}
	return doctor, nil
}

// CreateCommunity persists one of the template communities with the
// given creator enrolled as its admin.
func (f *Factory) CreateCommunity(index int, creator *models.User) (*models.Community, error) {
	tpl := communityTemplates[index%len(communityTemplates)]

	community := &models.Community{
		Name:            tpl.Name,
		Description:     tpl.Description,
		Category:        tpl.Category,
		CreatedByUserID: &creator.ID,
		MemberCount:     1,
	}
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(community).Error; err != nil {
			return err
		}
		return tx.Create(&models.CommunityMember{
			CommunityID: community.ID,
			UserID:      creator.ID,
			Role:        models.CommunityMemberRoleAdmin,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return community, nil
}

// JoinCommunity enrolls a member and bumps the counter.
func (f *Factory) JoinCommunity(community *models.Community, user *models.User) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.CommunityMember{
			CommunityID: community.ID,
			UserID:      user.ID,
			Role:        models.CommunityMemberRoleMember,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Community{}).
			Where("id = ?", community.ID).
			UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error
	})
}

// CreatePost persists a community post with fake content and a
// created_at spread over the past weeks.
func (f *Factory) CreatePost(community *models.Community, author *models.User) (*models.CommunityPost, error) {
	post := &models.CommunityPost{
		CommunityID: community.ID,
		AuthorID:    author.ID,
		Title:       gofakeit.Sentence(6),
		Content:     gofakeit.Paragraph(1, 3, 10, "\n"),
		CreatedAt:   time.Now().Add(-time.Duration(f.rng.Intn(45*24)) * time.Hour),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}
