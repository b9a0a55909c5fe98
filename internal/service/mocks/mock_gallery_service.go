package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gyccsite/internal/service"
)

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) ListImages(ctx context.Context, prefix string) (*service.ImageListResult, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageListResult), args.Error(1)
}

func (m *MockGalleryService) PresignKeys(ctx context.Context, keys []string) (map[string]*string, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*string), args.Error(1)
}

func (m *MockGalleryService) Status(ctx context.Context) (*service.StorageStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StorageStatus), args.Error(1)
}
