package repository

import (
	"context"

	"gyccsite/internal/model"
)

// VoicePostRepository defines data access for Our Voice posts using SQL queries only.
// Lookups of a missing row return sql.ErrNoRows.
type VoicePostRepository interface {
	// List returns a page of posts, newest first. When activeOnly is set,
	// soft-deleted posts are excluded.
	List(ctx context.Context, activeOnly bool, pq PageQuery) (*PageResult[model.VoicePost], error)

	// FindByID returns a post regardless of status.
	FindByID(ctx context.Context, id string) (*model.VoicePost, error)

	// FindActiveBySlug returns the newest active post with the given slug.
	FindActiveBySlug(ctx context.Context, slug string) (*model.VoicePost, error)

	// Create inserts a post and returns the stored row.
	Create(ctx context.Context, p *model.VoicePost) (*model.VoicePost, error)

	// Update applies the non-nil fields of patch and returns the stored row.
	Update(ctx context.Context, id string, patch model.VoicePostPatch) (*model.VoicePost, error)

	// IncrementHit bumps the view counter and returns the new value.
	IncrementHit(ctx context.Context, id string) (int64, error)
}
