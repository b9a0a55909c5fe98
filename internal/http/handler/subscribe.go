package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gyccsite/internal/service"
	"gyccsite/internal/validation"
)

type subscribeResponse struct {
	Message string                `json:"message"`
	Data    subscribeResponseData `json:"data"`
}

type subscribeResponseData struct {
	ID string `json:"id"`
}

// Subscribe stores a newsletter signup.
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body service.SubscribeInput true "Signup form"
// @Success 201 {object} subscribeResponse
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /subscribe [post]
func Subscribe(svc service.SubscriberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SubscribeInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		sub, err := svc.Subscribe(c.UserContext(), in)
		if err != nil {
			var ve *validation.Error
			switch {
			case errors.As(err, &ve):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Message)
			case errors.Is(err, service.ErrDuplicateEmail):
				return writeError(c, fiber.StatusConflict, "ALREADY_SUBSCRIBED", "This email is already subscribed")
			}
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("newsletter signup failed")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to subscribe to newsletter")
		}

		return c.Status(fiber.StatusCreated).JSON(subscribeResponse{
			Message: "Successfully subscribed to newsletter",
			Data:    subscribeResponseData{ID: sub.ID},
		})
	}
}

// ListSubscribers pages through newsletter signups.
// @Summary List newsletter subscribers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Name or email filter"
// @Success 200 {object} service.SubscriberListResult
// @Failure 401 {object} errorPayload
// @Router /admin/subscribers [get]
func ListSubscribers(svc service.SubscriberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid page or limit")
		}

		res, err := svc.List(c.UserContext(), c.Query("search"), page, limit)
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("subscriber listing failed")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
