package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"gyccsite/internal/model"
	"gyccsite/internal/repository"
)

const uniqueViolation = "23505"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SubscriberPostgres is a PostgreSQL implementation of repository.SubscriberRepository.
// The table name comes from configuration, never from request input.
type SubscriberPostgres struct {
	db    *sql.DB
	table string
}

// NewSubscriberPostgres creates a repository bound to the given signup table.
func NewSubscriberPostgres(db *sql.DB, table string) *SubscriberPostgres {
	return &SubscriberPostgres{db: db, table: table}
}

var _ repository.SubscriberRepository = (*SubscriberPostgres)(nil)

// ExistsByEmail checks for an existing signup with the exact (normalized) email.
func (r *SubscriberPostgres) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE email = $1)`, r.table)
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a signup. Unique violations are reported as repository.ErrDuplicate.
func (r *SubscriberPostgres) Create(ctx context.Context, s *model.Subscriber) (*model.Subscriber, error) {
	q := fmt.Sprintf(`INSERT INTO %s (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`, r.table)
	out := *s
	err := r.db.QueryRowContext(ctx, q, s.FirstName, s.LastName, s.Email).
		Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return &out, nil
}

// List returns signups using LIMIT/OFFSET pagination and a total count.
func (r *SubscriberPostgres) List(ctx context.Context, search string, pq repository.PageQuery) (*repository.PageResult[model.Subscriber], error) {
	where := ""
	args := make([]any, 0, 3)
	if search != "" {
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
		where = " WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1"
	}

	var total int
	qCount := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.table, where)
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := fmt.Sprintf(`SELECT id, first_name, last_name, email, created_at, updated_at
		FROM %s%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, r.table, where, len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset)
	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Subscriber, 0)
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Subscriber]{Items: items, Total: total}, nil
}
