package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery-tracker/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository stores delivery-point submissions in PostgreSQL
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `
	id, submitted_at, latitude, longitude, place_name, note,
	photo1, photo2, photo3, review_status,
	gate, road, road_side, main_alley, main_alley_side, sub_alley, sub_alley_side
`

func scanSubmission(row pgx.Row) (models.Submission, error) {
	var s models.Submission
	var gate, road, roadSide, mainAlley, mainAlleySide, subAlley, subAlleySide *string
	err := row.Scan(
		&s.ID,
		&s.SubmittedAt,
		&s.Latitude,
		&s.Longitude,
		&s.PlaceName,
		&s.Note,
		&s.PhotoFlags[0],
		&s.PhotoFlags[1],
		&s.PhotoFlags[2],
		&s.ReviewStatus,
		&gate, &road, &roadSide, &mainAlley, &mainAlleySide, &subAlley, &subAlleySide,
	)
	if err != nil {
		return models.Submission{}, err
	}

	// A null gate column means the record was never classified.
	if gate != nil {
		deref := func(v *string) string {
			if v == nil {
				return models.Placeholder
			}
			return *v
		}
		s.Classification = &models.TaxonomyPath{
			Gate:          *gate,
			Road:          deref(road),
			RoadSide:      deref(roadSide),
			MainAlley:     deref(mainAlley),
			MainAlleySide: deref(mainAlleySide),
			SubAlley:      deref(subAlley),
			SubAlleySide:  deref(subAlleySide),
		}
	}
	return s, nil
}

// Append inserts a new submission and returns it with its assigned id.
// Review status and classification are written as given; the service
// layer forces pending/unclassified on create.
func (r *SubmissionRepository) Append(ctx context.Context, s models.Submission) (models.Submission, error) {
	sql := `
		INSERT INTO submissions (submitted_at, latitude, longitude, place_name, note, photo1, photo2, photo3, review_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql,
		s.SubmittedAt, s.Latitude, s.Longitude, s.PlaceName, s.Note,
		s.PhotoFlags[0], s.PhotoFlags[1], s.PhotoFlags[2], s.ReviewStatus,
	).Scan(&s.ID)
	if err != nil {
		return models.Submission{}, fmt.Errorf("repository: failed to append submission: %w", err)
	}
	return s, nil
}

func (r *SubmissionRepository) list(ctx context.Context, sql string, args ...any) ([]models.Submission, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan submission: %w", err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating submission rows: %w", err)
	}
	return subs, nil
}

// ListAll returns every submission in insertion order
func (r *SubmissionRepository) ListAll(ctx context.Context) ([]models.Submission, error) {
	return r.list(ctx, `SELECT `+submissionColumns+` FROM submissions ORDER BY id`)
}

// ListPending returns submissions still awaiting operator review
func (r *SubmissionRepository) ListPending(ctx context.Context) ([]models.Submission, error) {
	return r.list(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE review_status = $1 ORDER BY id`,
		models.StatusPending)
}

// GetByID returns a single submission
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (models.Submission, error) {
	row := r.db.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)
	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Submission{}, ErrNotFound
		}
		return models.Submission{}, fmt.Errorf("repository: failed to get submission: %w", err)
	}
	return s, nil
}

// Update applies a review patch to one submission in a single
// statement, so a failed patch never leaves the row half-written. Nil
// patch fields leave the stored value untouched. Concurrent updates to
// the same row are last-write-wins, same as the spreadsheet this table
// replaced.
func (r *SubmissionRepository) Update(ctx context.Context, id int64, patch models.ReviewPatch) (models.Submission, error) {
	var gate, road, roadSide, mainAlley, mainAlleySide, subAlley, subAlleySide *string
	if patch.Classification != nil {
		p := patch.Classification.Normalized()
		gate, road, roadSide = &p.Gate, &p.Road, &p.RoadSide
		mainAlley, mainAlleySide = &p.MainAlley, &p.MainAlleySide
		subAlley, subAlleySide = &p.SubAlley, &p.SubAlleySide
	}

	sql := `
		UPDATE submissions SET
			note = COALESCE($2, note),
			review_status = COALESCE($3, review_status),
			gate = COALESCE($4, gate),
			road = COALESCE($5, road),
			road_side = COALESCE($6, road_side),
			main_alley = COALESCE($7, main_alley),
			main_alley_side = COALESCE($8, main_alley_side),
			sub_alley = COALESCE($9, sub_alley),
			sub_alley_side = COALESCE($10, sub_alley_side)
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, sql, id, patch.Note, patch.ReviewStatus,
		gate, road, roadSide, mainAlley, mainAlleySide, subAlley, subAlleySide)
	if err != nil {
		return models.Submission{}, fmt.Errorf("repository: failed to update submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Submission{}, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Remove deletes one submission by id
func (r *SubmissionRepository) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
