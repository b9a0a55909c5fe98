package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gyccsite/internal/model"
	"gyccsite/internal/service"
)

type MockSubscriberService struct {
	mock.Mock
}

func (m *MockSubscriberService) Subscribe(ctx context.Context, in service.SubscribeInput) (*model.Subscriber, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) List(ctx context.Context, search string, page, limit int) (*service.SubscriberListResult, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubscriberListResult), args.Error(1)
}
