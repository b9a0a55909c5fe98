package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gyccsite/internal/service"
)

// UploadImage stores an editor image (multipart/form-data, field name: file).
// @Summary Upload an editor image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "JPEG, PNG, GIF or WebP, at most 5MB"
// @Success 201 {object} service.UploadResult
// @Failure 400 {object} errorPayload
// @Router /upload [post]
func UploadImage(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "No file provided")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.UploadImage(c.UserContext(), f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFileRequired):
				return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "No file provided")
			case errors.Is(err, service.ErrUnsupportedType):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "Invalid file type. Allowed: JPEG, PNG, GIF, WebP")
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusBadRequest, "FILE_TOO_LARGE", "File too large. Maximum size is 5MB")
			}
			zerolog.Ctx(c.UserContext()).Error().Err(err).Str("filename", fh.Filename).Msg("editor upload failed")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to upload image")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
