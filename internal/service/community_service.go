package service

import (
	"context"
	"strings"

	"mediconnect/internal/models"
	"mediconnect/internal/observability"
	"mediconnect/internal/repository"
	"mediconnect/internal/validation"
)

type CommunityService struct {
	communityRepo repository.CommunityRepository
}

type CreateCommunityInput struct {
	CreatorID   uint
	Name        string
	Description string
	Category    string
}

type CreatePostInput struct {
	CommunityID uint
	AuthorID    uint
	Title       string
	Content     string
}

func NewCommunityService(communityRepo repository.CommunityRepository) *CommunityService {
	return &CommunityService{communityRepo: communityRepo}
}

func (s *CommunityService) ListCommunities(ctx context.Context) ([]models.Community, error) {
	return s.communityRepo.List(ctx)
}

func (s *CommunityService) GetCommunity(ctx context.Context, id uint) (*models.Community, error) {
	return s.communityRepo.GetByID(ctx, id)
}

// CreateCommunity creates a community and enrolls the creator as its admin.
func (s *CommunityService) CreateCommunity(ctx context.Context, in CreateCommunityInput) (*models.Community, error) {
	if err := validation.ValidateCommunityName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCommunityCategory(in.Category); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	community := &models.Community{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    in.Category,
	}
	if err := s.communityRepo.Create(ctx, community, in.CreatorID); err != nil {
		return nil, err
	}
	return community, nil
}

// Join enrolls the user as a regular member. Joining twice is a conflict.
func (s *CommunityService) Join(ctx context.Context, communityID, userID uint) error {
	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		return err
	}
	if err := s.communityRepo.AddMember(ctx, communityID, userID, models.CommunityMemberRoleMember); err != nil {
		return err
	}
	observability.CommunityMembershipChanges.WithLabelValues("join").Inc()
	return nil
}

// Leave removes the user's membership. Leaving a community the user never
// joined is a not-found error.
func (s *CommunityService) Leave(ctx context.Context, communityID, userID uint) error {
	if err := s.communityRepo.RemoveMember(ctx, communityID, userID); err != nil {
		return err
	}
	observability.CommunityMembershipChanges.WithLabelValues("leave").Inc()
	return nil
}

func (s *CommunityService) ListPosts(ctx context.Context, communityID uint, limit, offset int) ([]models.CommunityPost, error) {
	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		return nil, err
	}
	return s.communityRepo.ListPosts(ctx, communityID, limit, offset)
}

// CreatePost publishes a post. Only members may post.
func (s *CommunityService) CreatePost(ctx context.Context, in CreatePostInput) (*models.CommunityPost, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Post title is required")
	}
	const maxTitleLen = 200
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Post title too long (max 200 characters)")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Post content is required")
	}

	member, err := s.communityRepo.GetMember(ctx, in.CommunityID, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, models.NewForbiddenError("Only community members can post")
	}

	post := &models.CommunityPost{
		CommunityID: in.CommunityID,
		AuthorID:    in.AuthorID,
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
	}
	if err := s.communityRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
