package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/middleware"
	"kenshi-webspace/internal/service/post"
)

type PostHandler struct {
	postService post.Service
}

func NewPostHandler(postService post.Service) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	authorID := c.Params("authorId")
	if authorID != currentUser.ID && !currentUser.HasRole(domain.RoleModerator) {
		return middleware.Forbidden("You can only publish as yourself")
	}

	var input domain.CreatePostInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	created, err := h.postService.CreateWithMedia(c.Context(), authorID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "New post created!",
		"postId":  created.ID,
	})
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	result, err := h.postService.GetByID(c.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	if c.Query("featured") == "true" {
		posts, err := h.postService.ListFeatured(c.Context())
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"params": fiber.Map{"featured": true},
			"posts":  posts,
		})
	}

	populate := c.Query("populate")
	if populate != "*" {
		return middleware.BadRequest("Unsupported query shape")
	}

	params := getPaginationParams(c)
	result, err := h.postService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"params": fiber.Map{
			"populate":  populate,
			"page":      params.Page,
			"page_size": params.PageSize,
		},
		"posts": result,
	})
}

func (h *PostHandler) ListByAuthor(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return middleware.BadRequest("Invalid user ID")
	}

	params := getPaginationParams(c)
	result, err := h.postService.ListByAuthor(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	existing, err := h.postService.GetByID(c.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}
	if existing.AuthorID != currentUser.ID && !currentUser.HasRole(domain.RoleModerator) {
		return middleware.Forbidden("You don't have permission to edit this post")
	}

	var input domain.UpdatePostInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	updated, err := h.postService.Update(c.Context(), postID, input)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	existing, err := h.postService.GetByID(c.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}
	if existing.AuthorID != currentUser.ID && !currentUser.HasRole(domain.RoleModerator) {
		return middleware.Forbidden("You don't have permission to delete this post")
	}

	if err := h.postService.DeleteCascade(c.Context(), postID, currentUser); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post deleted"})
}

func (h *PostHandler) ToggleLike(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == "" {
		return middleware.Unauthorized("User not authenticated")
	}

	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	liked, count, err := h.postService.ToggleLike(c.Context(), postID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"liked": liked,
		"likes": count,
	})
}

func (h *PostHandler) ToggleBookmark(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == "" {
		return middleware.Unauthorized("User not authenticated")
	}

	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	bookmarked, err := h.postService.ToggleBookmark(c.Context(), postID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"bookmarked": bookmarked})
}

func (h *PostHandler) CountView(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	if err := h.postService.CountView(c.Context(), postID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "View counted"})
}
