package handler

import (
	"github.com/gofiber/fiber/v2"

	"gyccsite/internal/model"
	"gyccsite/internal/service"
)

// voicePatchRequest is the partial update body; absent fields stay unchanged.
type voicePatchRequest struct {
	Subject   *string `json:"subject"`
	ContentMD *string `json:"contentMD"`
	Hashtag   *string `json:"hashtag"`
	VideoURL  *string `json:"mUrl"`
	Status    *string `json:"actstatus"`
}

type voicePostResponse struct {
	Message string           `json:"message"`
	Post    *model.VoicePost `json:"post"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListVoicePosts returns the public Our Voice feed.
// @Summary List Our Voice posts
// @Tags ourvoice
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size, default 12"
// @Success 200 {object} service.VoiceListResult
// @Router /ourvoice [get]
func ListVoicePosts(svc service.VoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid page or limit")
		}
		res, err := svc.ListPublic(c.UserContext(), page, limit)
		if err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(res)
	}
}

// GetVoicePost returns one active post by slug and counts the view.
// @Summary Get an Our Voice post
// @Tags ourvoice
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} model.VoicePost
// @Failure 404 {object} errorPayload
// @Router /ourvoice/{slug} [get]
func GetVoicePost(svc service.VoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(p)
	}
}

// AdminListVoicePosts lists posts of any status.
// @Summary List all Our Voice posts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size, default 25"
// @Success 200 {object} service.VoiceListResult
// @Router /admin/ourvoice [get]
func AdminListVoicePosts(svc service.VoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid page or limit")
		}
		res, err := svc.ListAll(c.UserContext(), page, limit)
		if err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(res)
	}
}

// AdminGetVoicePost returns one post by ID regardless of status.
// @Summary Get an Our Voice post by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.VoicePost
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /admin/ourvoice/{id} [get]
func AdminGetVoicePost(svc service.VoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(p)
	}
}

// AdminCreateVoicePost creates an active post.
// @Summary Create an Our Voice post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.VoicePostInput true "Post"
// @Success 201 {object} voicePostResponse
// @Failure 400 {object} errorPayload
// @Router /admin/ourvoice [post]
func AdminCreateVoicePost(svc service.VoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.VoicePostInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeContentError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(voicePostResponse{Message: "Post created successfully", Post: p})
	}
}

// AdminUpdateVoicePost applies a partial update.
// @Summary Update an Our Voice post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param body body voicePatchRequest true "Fields to change"
// @Success 200 {object} voicePostResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /admin/ourvoice/{id} [put]
func AdminUpdateVoicePost(svc service.VoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req voicePatchRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Update(c.UserContext(), c.Params("id"), model.VoicePostPatch{
			Subject:   req.Subject,
			ContentMD: req.ContentMD,
			Hashtag:   req.Hashtag,
			VideoURL:  req.VideoURL,
			Status:    req.Status,
		})
		if err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(voicePostResponse{Message: "Post updated successfully", Post: p})
	}
}

// AdminDeactivateVoicePost hides a post from the public feed.
// @Summary Deactivate an Our Voice post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorPayload
// @Router /admin/ourvoice/{id} [delete]
func AdminDeactivateVoicePost(svc service.VoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Deactivate(c.UserContext(), c.Params("id")); err != nil {
			return writeContentError(c, err)
		}
		return c.JSON(messageResponse{Message: "Post deactivated successfully"})
	}
}
