package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"gyccsite/internal/service"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*service.UploadResult, error) {
	args := m.Called(ctx, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}
