package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gyccsite/internal/config"
)

const defaultListMaxKeys = 1000

// minioStorage implements Storage on top of minio-go with path-style addressing.
// It is safe for concurrent use by multiple goroutines.
type minioStorage struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It performs no network call; an unreachable store surfaces on first use.
func NewMinIO(cfg config.StorageConfig) (Storage, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	cli, err := minio.New(cfg.HostPort(), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &minioStorage{
		client:   cli,
		bucket:   cfg.Bucket,
		endpoint: cfg.URL(),
	}, nil
}

func validate(cfg config.StorageConfig) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("storage endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return fmt.Errorf("storage credentials are required")
	}
	if cfg.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	return nil
}

// Put uploads an object using streaming I/O only (no local disk).
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	putOpts := minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	}
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, putOpts)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  opt.ContentType,
		LastModified: time.Now(), // MinIO UploadInfo doesn't return LastModified
		Metadata:     opt.Metadata,
	}, nil
}

// PresignGet generates a pre-signed URL for GET with the specified expiry.
func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// ListPage returns up to MaxKeys objects listed after the continuation token.
// The token is the last key of the previous page.
func (m *minioStorage) ListPage(ctx context.Context, in ListPageInput) (ListPageOutput, error) {
	maxKeys := in.MaxKeys
	if maxKeys <= 0 {
		maxKeys = defaultListMaxKeys
	}

	listCtx, cancel := context.WithCancel(ctx)
	objects := m.client.ListObjects(listCtx, m.bucket, minio.ListObjectsOptions{
		Prefix:     in.Prefix,
		Recursive:  true,
		MaxKeys:    maxKeys,
		StartAfter: in.ContinuationToken,
	})
	defer func() {
		cancel()
		for range objects {
		}
	}()

	out := ListPageOutput{Objects: make([]ObjectInfo, 0, maxKeys)}
	for o := range objects {
		if o.Err != nil {
			if err := ctx.Err(); err != nil {
				return ListPageOutput{}, fmt.Errorf("minio list: %w", err)
			}
			return ListPageOutput{}, fmt.Errorf("minio list: %w", o.Err)
		}
		out.Objects = append(out.Objects, ObjectInfo{
			Key:          o.Key,
			Size:         o.Size,
			ETag:         o.ETag,
			ContentType:  o.ContentType,
			LastModified: o.LastModified,
		})
		if len(out.Objects) == maxKeys {
			out.NextContinuationToken = o.Key
			break
		}
	}
	if err := ctx.Err(); err != nil {
		return ListPageOutput{}, fmt.Errorf("minio list: %w", err)
	}
	return out, nil
}

func (m *minioStorage) Bucket() string   { return m.bucket }
func (m *minioStorage) Endpoint() string { return m.endpoint }
