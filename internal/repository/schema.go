package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row addressed by id or position does
// not exist.
var ErrNotFound = errors.New("repository: not found")

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS taxonomy (
		id BIGSERIAL PRIMARY KEY,
		gate TEXT NOT NULL,
		road TEXT NOT NULL DEFAULT '-',
		road_side TEXT NOT NULL DEFAULT '-',
		main_alley TEXT NOT NULL DEFAULT '-',
		main_alley_side TEXT NOT NULL DEFAULT '-',
		sub_alley TEXT NOT NULL DEFAULT '-',
		sub_alley_side TEXT NOT NULL DEFAULT '-'
	);

	CREATE TABLE IF NOT EXISTS submissions (
		id BIGSERIAL PRIMARY KEY,
		submitted_at TIMESTAMPTZ NOT NULL,
		latitude TEXT NOT NULL,
		longitude TEXT NOT NULL,
		place_name TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		photo1 BOOLEAN NOT NULL DEFAULT FALSE,
		photo2 BOOLEAN NOT NULL DEFAULT FALSE,
		photo3 BOOLEAN NOT NULL DEFAULT FALSE,
		review_status TEXT NOT NULL DEFAULT 'pending',
		gate TEXT,
		road TEXT,
		road_side TEXT,
		main_alley TEXT,
		main_alley_side TEXT,
		sub_alley TEXT,
		sub_alley_side TEXT
	);

	CREATE INDEX IF NOT EXISTS submissions_review_status_idx ON submissions (review_status);
`

// EnsureSchema creates the backing tables if they do not exist yet.
// Coordinates are TEXT on purpose: the table inherited data from a
// spreadsheet export, and rows with non-numeric cells must stay
// readable.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}
