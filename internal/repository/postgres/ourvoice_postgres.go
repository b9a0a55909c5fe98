package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
)

const voiceColumns = `id, subject, slug, content, content_md, hashtag, video_url,
		thumbnail_key, thumbnail_orig_key, status, hit, created_at`

// VoicePostPostgres is a PostgreSQL implementation of repository.VoicePostRepository.
type VoicePostPostgres struct {
	db *sql.DB
}

// NewVoicePostPostgres creates a new VoicePostPostgres repository.
func NewVoicePostPostgres(db *sql.DB) *VoicePostPostgres {
	return &VoicePostPostgres{db: db}
}

var _ repository.VoicePostRepository = (*VoicePostPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoicePost(s rowScanner) (*model.VoicePost, error) {
	var p model.VoicePost
	if err := s.Scan(
		&p.ID,
		&p.Subject,
		&p.Slug,
		&p.Content,
		&p.ContentMD,
		&p.Hashtag,
		&p.VideoURL,
		&p.ThumbnailKey,
		&p.ThumbnailOrigKey,
		&p.Status,
		&p.Hit,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns posts using LIMIT/OFFSET pagination and a total count.
func (r *VoicePostPostgres) List(ctx context.Context, activeOnly bool, pq repository.PageQuery) (*repository.PageResult[model.VoicePost], error) {
	where := ""
	if activeOnly {
		where = " WHERE status = 'Y'"
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ourvoice"+where).Scan(&total); err != nil {
		return nil, err
	}

	q := "SELECT " + voiceColumns + " FROM ourvoice" + where +
		" ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2"
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.VoicePost, 0)
	for rows.Next() {
		p, err := scanVoicePost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.VoicePost]{Items: items, Total: total}, nil
}

// FindByID fetches a single post by its ID.
func (r *VoicePostPostgres) FindByID(ctx context.Context, id string) (*model.VoicePost, error) {
	q := "SELECT " + voiceColumns + " FROM ourvoice WHERE id = $1"
	return scanVoicePost(r.db.QueryRowContext(ctx, q, id))
}

// FindActiveBySlug fetches the newest active post carrying the slug.
func (r *VoicePostPostgres) FindActiveBySlug(ctx context.Context, slug string) (*model.VoicePost, error) {
	q := "SELECT " + voiceColumns + " FROM ourvoice WHERE slug = $1 AND status = 'Y'" +
		" ORDER BY created_at DESC LIMIT 1"
	return scanVoicePost(r.db.QueryRowContext(ctx, q, slug))
}

// Create inserts a new post row and returns the stored record.
func (r *VoicePostPostgres) Create(ctx context.Context, p *model.VoicePost) (*model.VoicePost, error) {
	q := `INSERT INTO ourvoice (subject, slug, content, content_md, hashtag, video_url,
		thumbnail_key, thumbnail_orig_key, status, hit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + voiceColumns
	return scanVoicePost(r.db.QueryRowContext(ctx, q,
		p.Subject,
		p.Slug,
		p.Content,
		p.ContentMD,
		p.Hashtag,
		p.VideoURL,
		p.ThumbnailKey,
		p.ThumbnailOrigKey,
		p.Status,
		p.Hit,
	))
}

// Update writes only the columns present in the patch.
func (r *VoicePostPostgres) Update(ctx context.Context, id string, patch model.VoicePostPatch) (*model.VoicePost, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("subject", patch.Subject)
	add("slug", patch.Slug)
	add("content_md", patch.ContentMD)
	add("hashtag", patch.Hashtag)
	add("video_url", patch.VideoURL)
	add("status", patch.Status)

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE ourvoice SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), voiceColumns)
	return scanVoicePost(r.db.QueryRowContext(ctx, q, args...))
}

// IncrementHit bumps the view counter atomically.
func (r *VoicePostPostgres) IncrementHit(ctx context.Context, id string) (int64, error) {
	const q = `UPDATE ourvoice SET hit = hit + 1 WHERE id = $1 RETURNING hit`
	var hit int64
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&hit); err != nil {
		return 0, err
	}
	return hit, nil
}
