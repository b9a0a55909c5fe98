package handler

import (
	"github.com/gofiber/fiber/v2"

	"gyccsite/internal/model"
	"gyccsite/internal/service"
)

type blogListResponse struct {
	Posts []model.BlogPost `json:"posts"`
}

type blogPostResponse struct {
	Message string          `json:"message,omitempty"`
	Post    *model.BlogPost `json:"post"`
}

// ListBlogPosts returns published post summaries, newest first.
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Success 200 {object} blogListResponse
// @Router /blog [get]
func ListBlogPosts(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.ListPublished(c.UserContext())
		if err != nil {
			return writeContentError(c, err)
		}
		if posts == nil {
			posts = []model.BlogPost{}
		}
		return c.JSON(blogListResponse{Posts: posts})
	}
}

// GetBlogPost returns a post by ID or slug.
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param id path string true "Post ID or slug"
// @Success 200 {object} blogPostResponse
// @Failure 404 {object} errorPayload
// @Router /blog/{id} [get]
func GetBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(blogPostResponse{Post: p})
	}
}

// CreateBlogPost publishes a new post.
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.BlogPostInput true "Post"
// @Success 201 {object} blogPostResponse
// @Failure 400 {object} errorPayload
// @Router /blog [post]
func CreateBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.BlogPostInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeContentError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(blogPostResponse{Message: "Post created successfully", Post: p})
	}
}

// UpdateBlogPost replaces a post's content.
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param body body service.BlogPostInput true "Post"
// @Success 200 {object} blogPostResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /blog/{id} [put]
func UpdateBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.BlogPostInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(blogPostResponse{Message: "Post updated successfully", Post: p})
	}
}

// DeleteBlogPost removes a post.
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorPayload
// @Router /blog/{id} [delete]
func DeleteBlogPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(messageResponse{Message: "Post deleted successfully"})
	}
}
