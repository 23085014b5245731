package server

import (
	"mediconnect/internal/models"
	"mediconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCommunities handles GET /api/communities.
func (s *Server) GetCommunities(c *fiber.Ctx) error {
	communities, err := s.communityService.ListCommunities(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"communities": communities})
}

// GetCommunity handles GET /api/communities/:id.
func (s *Server) GetCommunity(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	community, err := s.communityService.GetCommunity(c.UserContext(), communityID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"community": community})
}

// CreateCommunity handles POST /api/communities. The creator becomes the
// community's first member and its admin.
func (s *Server) CreateCommunity(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	community, err := s.communityService.CreateCommunity(c.UserContext(), service.CreateCommunityInput{
		CreatorID:   userID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"community": community})
}

// JoinCommunity handles POST /api/communities/:id/join.
func (s *Server) JoinCommunity(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.communityService.Join(c.UserContext(), communityID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Joined community"})
}

// LeaveCommunity handles POST /api/communities/:id/leave.
func (s *Server) LeaveCommunity(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.communityService.Leave(c.UserContext(), communityID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Left community"})
}

// GetCommunityPosts handles GET /api/communities/:id/posts.
func (s *Server) GetCommunityPosts(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	posts, err := s.communityService.ListPosts(c.UserContext(), communityID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// CreateCommunityPost handles POST /api/communities/:id/posts. Only
// members may post.
func (s *Server) CreateCommunityPost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.communityService.CreatePost(c.UserContext(), service.CreatePostInput{
		CommunityID: communityID,
		AuthorID:    userID,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}
