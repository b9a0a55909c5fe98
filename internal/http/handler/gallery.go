package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gyccsite/internal/service"
)

// photoDTO is one listed image as the browser consumes it.
type photoDTO struct {
	UUID     string  `json:"uuid"`
	URL      *string `json:"url"`
	FilePath string  `json:"filePath"`
}

type photoListResponse struct {
	Images []photoDTO `json:"images"`
	Count  int        `json:"count"`
}

type presignRequest struct {
	Keys []string `json:"keys"`
}

type presignResponse struct {
	URLs map[string]*string `json:"urls"`
}

type storageObjectDTO struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

type storageStatusResponse struct {
	Success     bool               `json:"success"`
	Bucket      string             `json:"bucket,omitempty"`
	Endpoint    string             `json:"endpoint"`
	ObjectCount int                `json:"objectCount"`
	Objects     []storageObjectDTO `json:"objects"`
	Error       string             `json:"error,omitempty"`
}

// ListPhotos returns every image of an album with presigned URLs.
// @Summary List album photos
// @Tags gallery
// @Produce json
// @Param prefix query string false "Album prefix"
// @Param bucketName query string false "Album prefix (legacy name, takes precedence)"
// @Success 200 {object} photoListResponse
// @Failure 400 {object} galleryError
// @Failure 500 {object} galleryError
// @Router /photos [get]
func ListPhotos(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prefix := c.Query("bucketName")
		if prefix == "" {
			prefix = c.Query("prefix")
		}

		res, err := svc.ListImages(c.UserContext(), prefix)
		if err != nil {
			if errors.Is(err, service.ErrPrefixRequired) {
				return writeGalleryError(c, fiber.StatusBadRequest, "Missing bucketName or prefix parameter")
			}
			zerolog.Ctx(c.UserContext()).Error().Err(err).Str("prefix", prefix).Msg("photo listing failed")
			return writeGalleryError(c, fiber.StatusInternalServerError, "Failed to fetch photos")
		}

		images := make([]photoDTO, len(res.Images))
		for i, img := range res.Images {
			images[i] = photoDTO{UUID: img.DisplayID(), URL: img.URL, FilePath: img.Key}
		}
		return c.JSON(photoListResponse{Images: images, Count: res.Count})
	}
}

// PresignImages signs a batch of at most 100 keys. Keys that could not be
// signed map to null.
// @Summary Presign image keys
// @Tags gallery
// @Accept json
// @Produce json
// @Param body body presignRequest true "Keys to sign"
// @Success 200 {object} presignResponse
// @Failure 400 {object} galleryError
// @Failure 500 {object} galleryError
// @Router /presign-images [post]
func PresignImages(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req presignRequest
		if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
			return writeGalleryError(c, fiber.StatusBadRequest, "Missing or invalid keys array")
		}

		urls, err := svc.PresignKeys(c.UserContext(), req.Keys)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrKeysRequired):
				return writeGalleryError(c, fiber.StatusBadRequest, "Missing or invalid keys array")
			case errors.Is(err, service.ErrTooManyKeys):
				return writeGalleryError(c, fiber.StatusBadRequest, "Too many keys requested (max 100)")
			}
			zerolog.Ctx(c.UserContext()).Error().Err(err).Int("keys", len(req.Keys)).Msg("presign batch failed")
			return writeGalleryError(c, fiber.StatusInternalServerError, "Failed to presign images")
		}
		return c.JSON(presignResponse{URLs: urls})
	}
}

// StorageStatus probes the object store with a single listing call.
// @Summary Object storage connectivity
// @Tags gallery
// @Produce json
// @Success 200 {object} storageStatusResponse
// @Failure 500 {object} storageStatusResponse
// @Router /storage/status [get]
func StorageStatus(svc service.GalleryService, endpoint string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Status(c.UserContext())
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("storage probe failed")
			return c.Status(fiber.StatusInternalServerError).JSON(storageStatusResponse{
				Endpoint: endpoint,
				Objects:  []storageObjectDTO{},
				Error:    "object storage unreachable",
			})
		}

		objects := make([]storageObjectDTO, len(st.Sample))
		for i, o := range st.Sample {
			objects[i] = storageObjectDTO{Key: o.Key, Size: o.Size, LastModified: o.LastModified}
		}
		return c.JSON(storageStatusResponse{
			Success:     true,
			Bucket:      st.Bucket,
			Endpoint:    st.Endpoint,
			ObjectCount: st.ObjectCount,
			Objects:     objects,
		})
	}
}
