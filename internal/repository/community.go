package repository

import (
	"context"
	"errors"

	"mediconnect/internal/cache"
	"mediconnect/internal/models"
	"mediconnect/internal/observability"

	"gorm.io/gorm"
)

// CommunityRepository defines persistence operations for communities,
// memberships, and posts.
type CommunityRepository interface {
	List(ctx context.Context) ([]models.Community, error)
	GetByID(ctx context.Context, id uint) (*models.Community, error)
	Create(ctx context.Context, community *models.Community, creatorID uint) error
	GetMember(ctx context.Context, communityID, userID uint) (*models.CommunityMember, error)
	AddMember(ctx context.Context, communityID, userID uint, role models.CommunityMemberRole) error
	RemoveMember(ctx context.Context, communityID, userID uint) error
	ListPosts(ctx context.Context, communityID uint, limit, offset int) ([]models.CommunityPost, error)
	CreatePost(ctx context.Context, post *models.CommunityPost) error
}

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository returns a new CommunityRepository implementation.
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

// List returns all communities regardless of caller identity.
func (r *communityRepository) List(ctx context.Context) ([]models.Community, error) {
	var communities []models.Community

	err := cache.Aside(ctx, cache.CommunityListKey(), &communities, cache.CommunityListTTL, func() error {
		defer observability.TrackQuery("select", "communities")()
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&communities).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return communities, nil
}

func (r *communityRepository) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	var community models.Community

	err := cache.Aside(ctx, cache.CommunityKey(id), &community, cache.CommunityTTL, func() error {
		defer observability.TrackQuery("select", "communities")()
		if err := r.db.WithContext(ctx).First(&community, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Community", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &community, nil
}

// Create persists the community together with the creator's admin membership.
// The member count starts at one to account for the creator.
func (r *communityRepository) Create(ctx context.Context, community *models.Community, creatorID uint) error {
	defer observability.TrackQuery("insert", "communities")()

	community.CreatedByUserID = &creatorID
	community.MemberCount = 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(community).Error; err != nil {
			return err
		}
		membership := models.CommunityMember{
			CommunityID: community.ID,
			UserID:      creatorID,
			Role:        models.CommunityMemberRoleAdmin,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.Invalidate(ctx, cache.CommunityListKey())
	return nil
}

func (r *communityRepository) GetMember(ctx context.Context, communityID, userID uint) (*models.CommunityMember, error) {
	defer observability.TrackQuery("select", "community_members")()

	var member models.CommunityMember
	err := r.db.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &member, nil
}

// AddMember inserts the membership and increments the member count in one transaction.
func (r *communityRepository) AddMember(ctx context.Context, communityID, userID uint, role models.CommunityMemberRole) error {
	defer observability.TrackQuery("insert", "community_members")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		membership := models.CommunityMember{
			CommunityID: communityID,
			UserID:      userID,
			Role:        role,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}
		return tx.Model(&models.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already a member of this community")
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateCommunity(ctx, communityID)
	return nil
}

// RemoveMember deletes the membership and decrements the member count in one
// transaction. The count never goes below zero.
func (r *communityRepository) RemoveMember(ctx context.Context, communityID, userID uint) error {
	defer observability.TrackQuery("delete", "community_members")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("community_id = ? AND user_id = ?", communityID, userID).
			Delete(&models.CommunityMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Community membership", userID)
		}
		return tx.Model(&models.Community{}).
			Where("id = ? AND member_count > 0", communityID).
			UpdateColumn("member_count", gorm.Expr("member_count - 1")).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateCommunity(ctx, communityID)
	return nil
}

func (r *communityRepository) ListPosts(ctx context.Context, communityID uint, limit, offset int) ([]models.CommunityPost, error) {
	defer observability.TrackQuery("select", "community_posts")()

	var posts []models.CommunityPost
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("community_id = ?", communityID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *communityRepository) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	defer observability.TrackQuery("insert", "community_posts")()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
