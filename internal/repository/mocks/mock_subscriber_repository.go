package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
)

type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriberRepository) Create(ctx context.Context, s *model.Subscriber) (*model.Subscriber, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) List(ctx context.Context, search string, pq repository.PageQuery) (*repository.PageResult[model.Subscriber], error) {
	args := m.Called(ctx, search, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Subscriber]), args.Error(1)
}
