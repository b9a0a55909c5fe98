package storage

import (
	"context"
	"fmt"
	"strings"

	"gyccsite/internal/config"
)

// Driver names accepted in StorageConfig.Driver.
const (
	DriverMinIO = "minio"
	DriverS3    = "s3"
)

// New builds the Storage implementation selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverMinIO:
		return NewMinIO(cfg)
	case DriverS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
