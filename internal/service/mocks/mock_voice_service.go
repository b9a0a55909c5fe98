package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gyccsite/internal/model"
	"gyccsite/internal/service"
)

type MockVoiceService struct {
	mock.Mock
}

func (m *MockVoiceService) ListPublic(ctx context.Context, page, limit int) (*service.VoiceListResult, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VoiceListResult), args.Error(1)
}

func (m *MockVoiceService) GetBySlug(ctx context.Context, slug string) (*model.VoicePost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoiceService) ListAll(ctx context.Context, page, limit int) (*service.VoiceListResult, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VoiceListResult), args.Error(1)
}

func (m *MockVoiceService) Get(ctx context.Context, id string) (*model.VoicePost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoiceService) Create(ctx context.Context, in service.VoicePostInput) (*model.VoicePost, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoiceService) Update(ctx context.Context, id string, patch model.VoicePostPatch) (*model.VoicePost, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoiceService) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
