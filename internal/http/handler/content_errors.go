package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gyccsite/internal/service"
	"gyccsite/internal/validation"
)

// writeContentError maps post service errors to the standardized envelope.
func writeContentError(c *fiber.Ctx, err error) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Message)
	case errors.Is(err, service.ErrInvalidID):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "Invalid post ID")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, service.ErrEmptySubject):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Subject cannot be empty")
	case errors.Is(err, service.ErrEmptyContent):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Content cannot be empty")
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Status must be Y or N")
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		return writeError(c, fiber.StatusBadRequest, "NO_FIELDS", "No fields to update")
	case errors.Is(err, service.ErrTitleContentEmpty):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Title and content are required")
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("post operation failed")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
