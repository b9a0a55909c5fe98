package postgres

import (
	"context"
	"database/sql"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
)

const blogSelect = `
		SELECT p.id, p.title, p.slug, p.content, p.excerpt, p.author_id, p.published,
		       p.created_at, p.updated_at, u.username, u.full_name
		FROM blog_posts p
		LEFT JOIN users u ON u.id = p.author_id`

// BlogPostgres is a PostgreSQL implementation of repository.BlogRepository.
type BlogPostgres struct {
	db *sql.DB
}

// NewBlogPostgres creates a new BlogPostgres repository.
func NewBlogPostgres(db *sql.DB) *BlogPostgres {
	return &BlogPostgres{db: db}
}

var _ repository.BlogRepository = (*BlogPostgres)(nil)

func scanBlogPost(s rowScanner) (*model.BlogPost, error) {
	var (
		p                  model.BlogPost
		excerpt, authorID  sql.NullString
		username, fullName sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&excerpt,
		&authorID,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
		&username,
		&fullName,
	); err != nil {
		return nil, err
	}
	if excerpt.Valid {
		p.Excerpt = &excerpt.String
	}
	if authorID.Valid {
		p.AuthorID = &authorID.String
		p.Author = &model.Author{Username: username.String, FullName: fullName.String}
	}
	return &p, nil
}

// ListPublished returns every published post, newest first.
func (r *BlogPostgres) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, blogSelect+`
		WHERE p.published = TRUE
		ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BlogPost, 0)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single post by its ID.
func (r *BlogPostgres) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	return scanBlogPost(r.db.QueryRowContext(ctx, blogSelect+` WHERE p.id = $1`, id))
}

// FindBySlug fetches the newest post carrying the slug.
func (r *BlogPostgres) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return scanBlogPost(r.db.QueryRowContext(ctx, blogSelect+`
		WHERE p.slug = $1
		ORDER BY p.created_at DESC
		LIMIT 1`, slug))
}

// Create inserts a post and returns it with database defaults filled in.
func (r *BlogPostgres) Create(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	const q = `
		INSERT INTO blog_posts (title, slug, content, excerpt, author_id, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	out := *p
	if err := r.db.QueryRowContext(ctx, q,
		p.Title,
		p.Slug,
		p.Content,
		p.Excerpt,
		p.AuthorID,
		p.Published,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites the editable columns. A missing row yields sql.ErrNoRows.
func (r *BlogPostgres) Update(ctx context.Context, p *model.BlogPost) (*model.BlogPost, error) {
	const q = `
		UPDATE blog_posts
		SET title = $1, slug = $2, content = $3, excerpt = $4, published = $5, updated_at = now()
		WHERE id = $6
		RETURNING created_at, updated_at
	`
	out := *p
	if err := r.db.QueryRowContext(ctx, q,
		p.Title,
		p.Slug,
		p.Content,
		p.Excerpt,
		p.Published,
		p.ID,
	).Scan(&out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a post by ID.
func (r *BlogPostgres) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
