package service

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"gyccsite/internal/config"
	"gyccsite/internal/model"
	"gyccsite/internal/natsort"
	"gyccsite/internal/storage"
)

var tracer = otel.Tracer("gyccsite/internal/service")

const (
	defaultListPageSize = 1000
	statusSampleSize    = 10
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
}

// IsImageKey reports whether the key ends in a recognized image extension,
// compared case-insensitively. Folder markers never match.
func IsImageKey(key string) bool {
	_, ok := imageExtensions[strings.ToLower(path.Ext(key))]
	return ok
}

// ImageListResult is the service-level DTO for one album listing.
type ImageListResult struct {
	Images []model.ImageObject
	Count  int
}

// StorageStatus summarizes the bound bucket for connectivity checks.
type StorageStatus struct {
	Bucket      string
	Endpoint    string
	ObjectCount int
	Sample      []storage.ObjectInfo
}

// GalleryService defines the photo gallery use cases.
type GalleryService interface {
	// ListImages returns every image under prefix in natural key order, each
	// with a freshly presigned URL (nil when signing failed).
	ListImages(ctx context.Context, prefix string) (*ImageListResult, error)

	// PresignKeys signs a caller-supplied batch of keys.
	PresignKeys(ctx context.Context, keys []string) (map[string]*string, error)

	// Status lists the first page of the bucket.
	Status(ctx context.Context) (*StorageStatus, error)
}

type galleryService struct {
	store     storage.Storage
	presigner *Presigner
	pageSize  int
	metrics   *Metrics
}

// NewGalleryService constructs a new GalleryService.
func NewGalleryService(store storage.Storage, presigner *Presigner, cfg config.GalleryConfig, m *Metrics) GalleryService {
	pageSize := cfg.ListPageSize
	if pageSize <= 0 {
		pageSize = defaultListPageSize
	}
	return &galleryService{store: store, presigner: presigner, pageSize: pageSize, metrics: m}
}

func (s *galleryService) ListImages(ctx context.Context, prefix string) (*ImageListResult, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, ErrPrefixRequired
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	ctx, span := tracer.Start(ctx, "gallery.ListImages")
	defer span.End()
	span.SetAttributes(attribute.String("gallery.prefix", prefix))

	objects, err := s.listAllImages(ctx, prefix)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, fmt.Errorf("list objects: %w", err)
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return natsort.Less(objects[i].Key, objects[j].Key)
	})

	keys := make([]string, len(objects))
	for i, o := range objects {
		keys[i] = o.Key
	}
	urls := s.presigner.Sign(ctx, keys, s.presigner.Expiry())

	images := make([]model.ImageObject, len(objects))
	for i, o := range objects {
		images[i] = model.ImageObject{
			Key:          o.Key,
			ETag:         o.ETag,
			URL:          urls[o.Key],
			Size:         o.Size,
			LastModified: o.LastModified,
		}
	}

	s.metrics.listed(len(images))
	span.SetAttributes(attribute.Int("gallery.count", len(images)))
	zerolog.Ctx(ctx).Debug().Str("prefix", prefix).Int("count", len(images)).Msg("gallery listed")

	return &ImageListResult{Images: images, Count: len(images)}, nil
}

// listAllImages follows continuation tokens until the listing is exhausted,
// keeping only image keys.
func (s *galleryService) listAllImages(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	var (
		out   []storage.ObjectInfo
		token string
		pages int
	)
	for {
		page, err := s.store.ListPage(ctx, storage.ListPageInput{
			Prefix:            prefix,
			ContinuationToken: token,
			MaxKeys:           s.pageSize,
		})
		if err != nil {
			return nil, err
		}
		pages++
		for _, o := range page.Objects {
			if IsImageKey(o.Key) {
				out = append(out, o)
			}
		}
		if page.NextContinuationToken == "" {
			break
		}
		if page.NextContinuationToken == token {
			return nil, fmt.Errorf("continuation token %q did not advance", token)
		}
		token = page.NextContinuationToken
	}
	zerolog.Ctx(ctx).Trace().Int("pages", pages).Msg("listing drained")
	return out, nil
}

func (s *galleryService) PresignKeys(ctx context.Context, keys []string) (map[string]*string, error) {
	return s.presigner.SignBatch(ctx, keys)
}

func (s *galleryService) Status(ctx context.Context) (*StorageStatus, error) {
	page, err := s.store.ListPage(ctx, storage.ListPageInput{MaxKeys: s.pageSize})
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	sample := page.Objects
	if len(sample) > statusSampleSize {
		sample = sample[:statusSampleSize]
	}
	return &StorageStatus{
		Bucket:      s.store.Bucket(),
		Endpoint:    s.store.Endpoint(),
		ObjectCount: len(page.Objects),
		Sample:      sample,
	}, nil
}
