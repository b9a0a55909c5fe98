package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyccsite/internal/model"
)

var blogCols = []string{
	"id", "title", "slug", "content", "excerpt", "author_id", "published",
	"created_at", "updated_at", "username", "full_name",
}

func TestBlogPostgres_ListPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBlogPostgres(db)
	now := time.Now()

	rows := sqlmock.NewRows(blogCols).
		AddRow("b-1", "Heat", "heat", "body", "short", "u-1", true, now, now, "mei", "Mei Lin").
		AddRow("b-2", "Rain", "rain", "body", nil, nil, true, now, now, nil, nil)
	mock.ExpectQuery(`FROM blog_posts p\s+LEFT JOIN users u ON u.id = p.author_id\s+WHERE p.published = TRUE`).
		WillReturnRows(rows)

	posts, err := repo.ListPublished(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "Mei Lin", posts[0].Author.FullName)
	assert.Equal(t, "short", *posts[0].Excerpt)
	assert.Nil(t, posts[1].Author)
	assert.Nil(t, posts[1].Excerpt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogPostgres_FindBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBlogPostgres(db)

	mock.ExpectQuery(`WHERE p.slug = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	p, err := repo.FindBySlug(context.Background(), "nope")

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBlogPostgres(db)
	now := time.Now()
	in := &model.BlogPost{Title: "Heat", Slug: "heat", Content: "body", Published: true}

	mock.ExpectQuery("INSERT INTO blog_posts").
		WithArgs("Heat", "heat", "body", nil, nil, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("b-9", now, now))

	out, err := repo.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "b-9", out.ID)
	assert.Empty(t, in.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBlogPostgres(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM blog_posts WHERE id = \$1`).
		WithArgs("b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM blog_posts WHERE id = \$1`).
		WithArgs("b-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "b-2")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
