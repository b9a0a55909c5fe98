package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
	repoMocks "gyccsite/internal/repository/mocks"
	"gyccsite/internal/validation"
)

func TestSubscriberService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and stores", func(t *testing.T) {
		repo := new(repoMocks.MockSubscriberRepository)
		repo.On("ExistsByEmail", ctx, "ada@example.org").Return(false, nil)
		repo.On("Create", ctx, &model.Subscriber{FirstName: "Ada", LastName: "Wu", Email: "ada@example.org"}).
			Return(&model.Subscriber{ID: "s-1"}, nil)

		out, err := NewSubscriberService(repo).Subscribe(ctx, SubscribeInput{
			FirstName: " Ada ", LastName: "Wu", Email: "  Ada@Example.ORG ",
		})

		require.NoError(t, err)
		assert.Equal(t, "s-1", out.ID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(repoMocks.MockSubscriberRepository)
		repo.On("ExistsByEmail", ctx, "ada@example.org").Return(true, nil)

		_, err := NewSubscriberService(repo).Subscribe(ctx, SubscribeInput{FirstName: "A", LastName: "W", Email: "ada@example.org"})

		assert.ErrorIs(t, err, ErrDuplicateEmail)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate on insert race", func(t *testing.T) {
		repo := new(repoMocks.MockSubscriberRepository)
		repo.On("ExistsByEmail", ctx, "ada@example.org").Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)

		_, err := NewSubscriberService(repo).Subscribe(ctx, SubscribeInput{FirstName: "A", LastName: "W", Email: "ada@example.org"})

		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := new(repoMocks.MockSubscriberRepository)

		_, err := NewSubscriberService(repo).Subscribe(ctx, SubscribeInput{FirstName: "A", LastName: "W", Email: "ada@"})

		var ve *validation.Error
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Please enter a valid email address", ve.Message)
		repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})
}

func TestSubscriberService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockSubscriberRepository)

	repo.On("List", ctx, "ada", repository.PageQuery{Limit: 25, Offset: 25}).
		Return(&repository.PageResult[model.Subscriber]{Items: []model.Subscriber{{ID: "s-1"}}, Total: 26}, nil)

	res, err := NewSubscriberService(repo).List(ctx, " ada ", 2, 0)

	require.NoError(t, err)
	assert.Len(t, res.Subscribers, 1)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNextPage)
	assert.True(t, res.Pagination.HasPrevPage)
}
