package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery-tracker/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaxonomyRepository stores the flat table of location paths in PostgreSQL
type TaxonomyRepository struct {
	db *pgxpool.Pool
}

// NewTaxonomyRepository creates a new PostgreSQL taxonomy repository
func NewTaxonomyRepository(db *pgxpool.Pool) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// ListAll returns every path in insertion order
func (r *TaxonomyRepository) ListAll(ctx context.Context) ([]models.TaxonomyPath, error) {
	sql := `
		SELECT gate, road, road_side, main_alley, main_alley_side, sub_alley, sub_alley_side
		FROM taxonomy
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list taxonomy: %w", err)
	}
	defer rows.Close()

	var paths []models.TaxonomyPath
	for rows.Next() {
		var p models.TaxonomyPath
		err := rows.Scan(
			&p.Gate,
			&p.Road,
			&p.RoadSide,
			&p.MainAlley,
			&p.MainAlleySide,
			&p.SubAlley,
			&p.SubAlleySide,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan taxonomy path: %w", err)
		}
		paths = append(paths, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating taxonomy rows: %w", err)
	}

	return paths, nil
}

// Append inserts one full path at the end of the table
func (r *TaxonomyRepository) Append(ctx context.Context, p models.TaxonomyPath) error {
	sql := `
		INSERT INTO taxonomy (gate, road, road_side, main_alley, main_alley_side, sub_alley, sub_alley_side)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, sql,
		p.Gate, p.Road, p.RoadSide, p.MainAlley, p.MainAlleySide, p.SubAlley, p.SubAlleySide)
	if err != nil {
		return fmt.Errorf("repository: failed to append taxonomy path: %w", err)
	}
	return nil
}

// RemoveAt deletes the path at the given zero-based store position.
// Rows after it shift down by one, matching row deletion in the
// spreadsheet the table replaced.
func (r *TaxonomyRepository) RemoveAt(ctx context.Context, index int) error {
	if index < 0 {
		return ErrNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM taxonomy ORDER BY id OFFSET $1 LIMIT 1`, index).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("repository: failed to locate taxonomy row: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM taxonomy WHERE id = $1`, id); err != nil {
		return fmt.Errorf("repository: failed to delete taxonomy row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit taxonomy delete: %w", err)
	}
	return nil
}
