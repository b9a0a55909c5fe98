package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"gyccsite/internal/config"
	"gyccsite/internal/storage"
)

// allowedImageTypes maps accepted upload content types to a fallback extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadResult is the stored editor image. URL is a presigned link for the
// editor preview and is nil when signing failed.
type UploadResult struct {
	Key string  `json:"key"`
	URL *string `json:"url"`
}

// UploadService defines editor image uploads.
type UploadService interface {
	// UploadImage checks type and size, then streams the content to object storage
	// under a generated key. The original filename only contributes its extension.
	UploadImage(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*UploadResult, error)
}

type uploadService struct {
	store     storage.Storage
	presigner *Presigner
	limits    config.UploadConfig
}

// NewUploadService constructs a new UploadService.
func NewUploadService(store storage.Storage, presigner *Presigner, cfg config.UploadConfig) UploadService {
	return &uploadService{store: store, presigner: presigner, limits: cfg}
}

func (s *uploadService) UploadImage(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*UploadResult, error) {
	if r == nil {
		return nil, ErrFileRequired
	}
	fallbackExt, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}
	if s.limits.MaxBytes > 0 && size > s.limits.MaxBytes {
		return nil, ErrFileTooLarge
	}

	ext := fileExt(filename)
	if ext == "" {
		ext = fallbackExt
	}
	key := path.Join(s.limits.KeyPrefix, uuid.NewString()+"."+ext)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	urls := s.presigner.Sign(ctx, []string{info.Key}, s.presigner.Expiry())
	return &UploadResult{Key: info.Key, URL: urls[info.Key]}, nil
}

// fileExt returns the lowercased extension of name when it is purely alphanumeric.
func fileExt(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ext == "" || len(ext) > 5 {
		return ""
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
