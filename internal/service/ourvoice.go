package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
	"gyccsite/internal/validation"
)

const (
	publicVoicePageSize = 12
	adminVoicePageSize  = 25
)

// VoicePostInput is the payload for creating a post. Fields are trimmed before validation.
type VoicePostInput struct {
	Subject   string `json:"subject" label:"Subject" validate:"required"`
	ContentMD string `json:"contentMD" label:"Content" validate:"required"`
	Hashtag   string `json:"hashtag"`
	VideoURL  string `json:"mUrl"`
}

// VoiceListResult is a page of posts.
type VoiceListResult struct {
	Posts      []model.VoicePost `json:"posts"`
	Pagination Pagination        `json:"pagination"`
}

// VoiceService defines the Our Voice feed and its administration.
type VoiceService interface {
	// ListPublic returns active posts, newest first, with thumbnails resolved.
	ListPublic(ctx context.Context, page, limit int) (*VoiceListResult, error)

	// GetBySlug returns an active post and counts the view.
	GetBySlug(ctx context.Context, slug string) (*model.VoicePost, error)

	// ListAll returns posts of any status for administration.
	ListAll(ctx context.Context, page, limit int) (*VoiceListResult, error)

	Get(ctx context.Context, id string) (*model.VoicePost, error)
	Create(ctx context.Context, in VoicePostInput) (*model.VoicePost, error)

	// Update applies a partial update. Present text fields must not be blank.
	Update(ctx context.Context, id string, patch model.VoicePostPatch) (*model.VoicePost, error)

	// Deactivate hides a post from the public feed.
	Deactivate(ctx context.Context, id string) error
}

type voiceService struct {
	repo      repository.VoicePostRepository
	presigner *Presigner
}

// NewVoiceService constructs a new VoiceService.
func NewVoiceService(repo repository.VoicePostRepository, presigner *Presigner) VoiceService {
	return &voiceService{repo: repo, presigner: presigner}
}

func (s *voiceService) ListPublic(ctx context.Context, page, limit int) (*VoiceListResult, error) {
	page, limit, offset := normalizePage(page, limit, publicVoicePageSize)
	res, err := s.repo.List(ctx, true, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	s.resolveThumbnails(ctx, res.Items)
	return &VoiceListResult{Posts: res.Items, Pagination: newPagination(page, limit, res.Total)}, nil
}

func (s *voiceService) GetBySlug(ctx context.Context, slug string) (*model.VoicePost, error) {
	p, err := s.repo.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	hit, err := s.repo.IncrementHit(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Hit = hit
	posts := []model.VoicePost{*p}
	s.resolveThumbnails(ctx, posts)
	return &posts[0], nil
}

func (s *voiceService) ListAll(ctx context.Context, page, limit int) (*VoiceListResult, error) {
	page, limit, offset := normalizePage(page, limit, adminVoicePageSize)
	res, err := s.repo.List(ctx, false, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &VoiceListResult{Posts: res.Items, Pagination: newPagination(page, limit, res.Total)}, nil
}

func (s *voiceService) Get(ctx context.Context, id string) (*model.VoicePost, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *voiceService) Create(ctx context.Context, in VoicePostInput) (*model.VoicePost, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.ContentMD = strings.TrimSpace(in.ContentMD)
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.VoicePost{
		Subject:   in.Subject,
		Slug:      Slugify(in.Subject),
		ContentMD: in.ContentMD,
		Hashtag:   strings.TrimSpace(in.Hashtag),
		VideoURL:  strings.TrimSpace(in.VideoURL),
		Status:    model.StatusActive,
	})
}

func (s *voiceService) Update(ctx context.Context, id string, patch model.VoicePostPatch) (*model.VoicePost, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	patch.Slug = nil
	if patch.Subject != nil {
		subject := strings.TrimSpace(*patch.Subject)
		if subject == "" {
			return nil, ErrEmptySubject
		}
		slug := Slugify(subject)
		patch.Subject, patch.Slug = &subject, &slug
	}
	if patch.ContentMD != nil {
		content := strings.TrimSpace(*patch.ContentMD)
		if content == "" {
			return nil, ErrEmptyContent
		}
		patch.ContentMD = &content
	}
	patch.Hashtag = trimPtr(patch.Hashtag)
	patch.VideoURL = trimPtr(patch.VideoURL)
	if patch.Status != nil && *patch.Status != model.StatusActive && *patch.Status != model.StatusInactive {
		return nil, ErrInvalidStatus
	}
	if patch.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *voiceService) Deactivate(ctx context.Context, id string) error {
	status := model.StatusInactive
	_, err := s.Update(ctx, id, model.VoicePostPatch{Status: &status})
	return err
}

// resolveThumbnails fills the thumbnail URLs. Stored values that are already
// absolute URLs pass through; object keys are presigned together.
func (s *voiceService) resolveThumbnails(ctx context.Context, posts []model.VoicePost) {
	var keys []string
	for _, p := range posts {
		for _, k := range []string{p.ThumbnailKey, p.ThumbnailOrigKey} {
			if k != "" && !isAbsoluteURL(k) {
				keys = append(keys, k)
			}
		}
	}
	var urls map[string]*string
	if len(keys) > 0 {
		urls = s.presigner.Sign(ctx, keys, s.presigner.Expiry())
	}
	resolve := func(k string) *string {
		switch {
		case k == "":
			return nil
		case isAbsoluteURL(k):
			return &k
		default:
			return urls[k]
		}
	}
	for i := range posts {
		posts[i].ThumbnailURL = resolve(posts[i].ThumbnailKey)
		posts[i].ThumbnailOrigURL = resolve(posts[i].ThumbnailOrigKey)
	}
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
