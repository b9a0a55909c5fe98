package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
)

type MockVoicePostRepository struct {
	mock.Mock
}

func (m *MockVoicePostRepository) List(ctx context.Context, activeOnly bool, pq repository.PageQuery) (*repository.PageResult[model.VoicePost], error) {
	args := m.Called(ctx, activeOnly, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.VoicePost]), args.Error(1)
}

func (m *MockVoicePostRepository) FindByID(ctx context.Context, id string) (*model.VoicePost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoicePostRepository) FindActiveBySlug(ctx context.Context, slug string) (*model.VoicePost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoicePostRepository) Create(ctx context.Context, p *model.VoicePost) (*model.VoicePost, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoicePostRepository) Update(ctx context.Context, id string, patch model.VoicePostPatch) (*model.VoicePost, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoicePost), args.Error(1)
}

func (m *MockVoicePostRepository) IncrementHit(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
