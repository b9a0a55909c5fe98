package repository

import (
	"context"

	"gyccsite/internal/model"
)

// BlogRepository defines data access for blog posts.
type BlogRepository interface {
	// ListPublished returns published posts with their author, newest first.
	ListPublished(ctx context.Context) ([]model.BlogPost, error)

	// FindByID returns a post with its author.
	FindByID(ctx context.Context, id string) (*model.BlogPost, error)

	// FindBySlug returns a post with its author.
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)

	Create(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error)

	// Update overwrites title, slug, content, excerpt and published.
	Update(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error)

	// Delete removes a post. It reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
