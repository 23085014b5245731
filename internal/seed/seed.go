package seed

import (
	"fmt"
	"log"

	"mediconnect/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumPatients    int
	NumDoctors     int
	NumCommunities int
	PostsPerGroup  int
	ShouldClean    bool
}

// DefaultOptions returns a small but representative demo dataset.
func DefaultOptions() Options {
	return Options{
		NumPatients:    25,
		NumDoctors:     8,
		NumCommunities: 5,
		PostsPerGroup:  6,
	}
}

// Run seeds the database: an admin, patients, doctors in all three
// verification states, and communities with members and posts.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}

	factory, err := NewFactory(db)
	if err != nil {
		return err
	}

	if _, err := factory.CreateAdmin(); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	patients := make([]*models.User, 0, opts.NumPatients)
	for i := 0; i < opts.NumPatients; i++ {
		patient, err := factory.CreateUser(models.UserRolePatient)
		if err != nil {
			return fmt.Errorf("create patient: %w", err)
		}
		patients = append(patients, patient)
	}

	// Roughly two thirds approved, the rest split between pending and
	// rejected so the admin review queue is never empty.
	for i := 0; i < opts.NumDoctors; i++ {
		doctorUser, err := factory.CreateUser(models.UserRoleDoctor)
		if err != nil {
			return fmt.Errorf("create doctor user: %w", err)
		}
		status := models.VerificationApproved
		switch i % 4 {
		case 2:
			status = models.VerificationPending
		case 3:
			status = models.VerificationRejected
		}
		if _, err := factory.CreateDoctorProfile(doctorUser, status); err != nil {
			return fmt.Errorf("create doctor profile: %w", err)
		}
	}

	for i := 0; i < opts.NumCommunities && len(patients) > 0; i++ {
		creator := patients[i%len(patients)]
		community, err := factory.CreateCommunity(i, creator)
		if err != nil {
			return fmt.Errorf("create community: %w", err)
		}

		// Enroll a handful of other patients.
		members := []*models.User{creator}
		for j, patient := range patients {
			if patient.ID == creator.ID || j%3 != 0 {
				continue
			}
			if err := factory.JoinCommunity(community, patient); err != nil {
				return fmt.Errorf("join community: %w", err)
			}
			members = append(members, patient)
		}

		for j := 0; j < opts.PostsPerGroup; j++ {
			author := members[j%len(members)]
			if _, err := factory.CreatePost(community, author); err != nil {
				return fmt.Errorf("create post: %w", err)
			}
		}
	}

	log.Printf("seeded %d patients, %d doctors, %d communities",
		opts.NumPatients, opts.NumDoctors, opts.NumCommunities)
	return nil
}

// clean removes all seedable data. Order respects foreign keys.
func clean(db *gorm.DB) error {
	for _, model := range []any{
		&models.CommunityPost{},
		&models.CommunityMember{},
		&models.Community{},
		&models.Doctor{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
