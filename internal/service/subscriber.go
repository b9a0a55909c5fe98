package service

import (
	"context"
	"errors"
	"strings"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
	"gyccsite/internal/validation"
)

const adminSubscriberPageSize = 25

// SubscribeInput is the newsletter signup form.
type SubscribeInput struct {
	FirstName string `json:"firstName" label:"First name" validate:"required"`
	LastName  string `json:"lastName" label:"Last name" validate:"required"`
	Email     string `json:"email" label:"Email" validate:"required,loose_email"`
}

// SubscriberListResult is a page of signups.
type SubscriberListResult struct {
	Subscribers []model.Subscriber `json:"subscribers"`
	Pagination  Pagination         `json:"pagination"`
}

// SubscriberService defines the newsletter use cases.
type SubscriberService interface {
	// Subscribe stores a signup with a normalized email. A repeat email yields ErrDuplicateEmail.
	Subscribe(ctx context.Context, in SubscribeInput) (*model.Subscriber, error)

	// List returns signups for administration, optionally filtered by search.
	List(ctx context.Context, search string, page, limit int) (*SubscriberListResult, error)
}

type subscriberService struct {
	repo repository.SubscriberRepository
}

// NewSubscriberService constructs a new SubscriberService.
func NewSubscriberService(repo repository.SubscriberRepository) SubscriberService {
	return &subscriberService{repo: repo}
}

func (s *subscriberService) Subscribe(ctx context.Context, in SubscribeInput) (*model.Subscriber, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.Validate(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	out, err := s.repo.Create(ctx, &model.Subscriber{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same address.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return out, nil
}

func (s *subscriberService) List(ctx context.Context, search string, page, limit int) (*SubscriberListResult, error) {
	page, limit, offset := normalizePage(page, limit, adminSubscriberPageSize)
	res, err := s.repo.List(ctx, strings.TrimSpace(search), repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SubscriberListResult{Subscribers: res.Items, Pagination: newPagination(page, limit, res.Total)}, nil
}
