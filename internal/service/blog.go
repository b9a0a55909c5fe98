package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
)

// BlogPostInput is the payload for creating or replacing a post.
type BlogPostInput struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Excerpt   *string `json:"excerpt"`
	AuthorID  *string `json:"author_id"`
	Published *bool   `json:"published"`
}

// BlogService defines the blog use cases.
type BlogService interface {
	// ListPublished returns published post summaries without their bodies.
	ListPublished(ctx context.Context) ([]model.BlogPost, error)

	// Get looks a post up by ID when ref is a UUID, otherwise by slug.
	Get(ctx context.Context, ref string) (*model.BlogPost, error)

	Create(ctx context.Context, in BlogPostInput) (*model.BlogPost, error)
	Update(ctx context.Context, id string, in BlogPostInput) (*model.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	repo repository.BlogRepository
}

// NewBlogService constructs a new BlogService.
func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Content = ""
	}
	return posts, nil
}

func (s *blogService) Get(ctx context.Context, ref string) (*model.BlogPost, error) {
	var (
		p   *model.BlogPost
		err error
	)
	if _, perr := uuid.Parse(ref); perr == nil {
		p, err = s.repo.FindByID(ctx, ref)
	} else {
		p, err = s.repo.FindBySlug(ctx, ref)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *blogService) Create(ctx context.Context, in BlogPostInput) (*model.BlogPost, error) {
	p, err := in.toPost()
	if err != nil {
		return nil, err
	}
	if in.AuthorID != nil && *in.AuthorID != "" {
		if err := checkID(*in.AuthorID); err != nil {
			return nil, err
		}
		p.AuthorID = in.AuthorID
	}
	p.Published = true
	return s.repo.Create(ctx, p)
}

func (s *blogService) Update(ctx context.Context, id string, in BlogPostInput) (*model.BlogPost, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := in.toPost()
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.Published = in.Published == nil || *in.Published

	out, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (in BlogPostInput) toPost() (*model.BlogPost, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, ErrTitleContentEmpty
	}
	p := &model.BlogPost{
		Title:   title,
		Slug:    Slugify(title),
		Content: content,
	}
	if ex := trimPtr(in.Excerpt); ex != nil && *ex != "" {
		p.Excerpt = ex
	}
	return p, nil
}
