package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the S3-compatible object store abstraction used by the
// gallery, the Our Voice feed and editor uploads. Implementations stream content
// and never touch local disk.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// ListPageInput selects one page of a prefix listing.
// An empty ContinuationToken requests the first page.
type ListPageInput struct {
	Prefix            string
	ContinuationToken string
	MaxKeys           int
}

// ListPageOutput is one page of a prefix listing. NextContinuationToken is empty
// on the last page.
type ListPageOutput struct {
	Objects               []ObjectInfo
	NextContinuationToken string
}

// Storage is a reusable, S3-compatible object storage client interface.
// Implementations hold only read-only configuration and are safe for concurrent use.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// ListPage returns a single page of objects under a prefix.
	ListPage(ctx context.Context, in ListPageInput) (ListPageOutput, error)
	// Bucket returns the bucket name the client is bound to.
	Bucket() string
	// Endpoint returns the store's base URL.
	Endpoint() string
}
