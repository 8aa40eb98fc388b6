package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		username        TEXT NOT NULL UNIQUE,
		first_name      TEXT NOT NULL,
		last_name       TEXT NOT NULL,
		hashed_password TEXT NOT NULL,
		role            TEXT NOT NULL DEFAULT 'user',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tokens (
		id            TEXT PRIMARY KEY,
		access_token  TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		logged_out    BOOLEAN NOT NULL DEFAULT FALSE,
		user_id       TEXT NOT NULL REFERENCES users(id),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tokens_access_token ON tokens (access_token)`,
	`CREATE INDEX IF NOT EXISTS idx_tokens_refresh_token ON tokens (refresh_token)`,
	`CREATE INDEX IF NOT EXISTS idx_tokens_user_live ON tokens (user_id) WHERE NOT logged_out`,
	`CREATE TABLE IF NOT EXISTS default_exercises (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		slug         TEXT NOT NULL UNIQUE,
		target       TEXT NOT NULL DEFAULT '',
		description  JSONB NOT NULL DEFAULT '[]',
		instructions JSONB NOT NULL DEFAULT '[]',
		images       JSONB NOT NULL DEFAULT '[]',
		advices      JSONB NOT NULL DEFAULT '[]',
		video        TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_exercises (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		target       TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		instructions TEXT NOT NULL DEFAULT '',
		image        TEXT NOT NULL DEFAULT '',
		advices      TEXT NOT NULL DEFAULT '',
		video        TEXT NOT NULL DEFAULT '',
		user_id      TEXT NOT NULL REFERENCES users(id),
		session_id   TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_exercises_user ON user_exercises (user_id)`,
	`CREATE TABLE IF NOT EXISTS user_sessions (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		user_id      TEXT NOT NULL REFERENCES users(id),
		session_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_sessions_user ON user_sessions (user_id)`,
}

// Migrate applies the bootstrap DDL. Statements are idempotent so this is
// safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
