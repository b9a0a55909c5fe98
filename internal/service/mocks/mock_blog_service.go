package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gyccsite/internal/model"
	"gyccsite/internal/service"
)

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Get(ctx context.Context, ref string) (*model.BlogPost, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Create(ctx context.Context, in service.BlogPostInput) (*model.BlogPost, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Update(ctx context.Context, id string, in service.BlogPostInput) (*model.BlogPost, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
