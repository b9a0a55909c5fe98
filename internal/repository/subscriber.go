package repository

import (
	"context"

	"gyccsite/internal/model"
)

// SubscriberRepository defines data access for newsletter signups.
type SubscriberRepository interface {
	// ExistsByEmail reports whether the address is already subscribed.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a signup. A unique violation on email is returned as-is.
	Create(ctx context.Context, s *model.Subscriber) (*model.Subscriber, error)

	// List returns signups newest first. A non-empty search matches first name,
	// last name or email case-insensitively.
	List(ctx context.Context, search string, pq PageQuery) (*PageResult[model.Subscriber], error)
}
