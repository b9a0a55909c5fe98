package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last step, so a partially applied schema is retried.
const sentinelTable = "public.newsletter_signup_test"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  username   TEXT        NOT NULL UNIQUE,
  full_name  TEXT        NOT NULL DEFAULT '',
  email      TEXT        NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_blog_posts",
		SQL: `CREATE TABLE IF NOT EXISTS blog_posts (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title      TEXT        NOT NULL,
  slug       TEXT        NOT NULL,
  content    TEXT        NOT NULL,
  excerpt    TEXT,
  author_id  UUID        REFERENCES users (id) ON DELETE SET NULL,
  published  BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_blog_posts_slug",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts (slug);`,
	},
	{
		Name: "create_index_blog_posts_published_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_posts_published_created_at ON blog_posts (published, created_at DESC);`,
	},
	{
		Name: "create_table_ourvoice",
		SQL: `CREATE TABLE IF NOT EXISTS ourvoice (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  subject            TEXT        NOT NULL,
  slug               TEXT        NOT NULL DEFAULT '',
  content            TEXT        NOT NULL DEFAULT '',
  content_md         TEXT        NOT NULL DEFAULT '',
  hashtag            TEXT        NOT NULL DEFAULT '',
  video_url          TEXT        NOT NULL DEFAULT '',
  thumbnail_key      TEXT        NOT NULL DEFAULT '',
  thumbnail_orig_key TEXT        NOT NULL DEFAULT '',
  status             CHAR(1)     NOT NULL DEFAULT 'Y' CHECK (status IN ('Y', 'N')),
  hit                BIGINT      NOT NULL DEFAULT 0 CHECK (hit >= 0),
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_ourvoice_status_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ourvoice_status_created_at ON ourvoice (status, created_at DESC);`,
	},
	{
		Name: "create_index_ourvoice_slug",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ourvoice_slug ON ourvoice (slug);`,
	},
	{
		Name: "create_table_newsletter_signup",
		SQL: `CREATE TABLE IF NOT EXISTS newsletter_signup (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name TEXT        NOT NULL,
  last_name  TEXT        NOT NULL,
  email      TEXT        NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_newsletter_signup_test",
		SQL:  `CREATE TABLE IF NOT EXISTS newsletter_signup_test (LIKE newsletter_signup INCLUDING ALL);`,
	},
}

// EnsureMigrated checks for the sentinel table and runs every step if it is missing.
// All steps are idempotent.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Str("status", "error").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
