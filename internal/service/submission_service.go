package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"delivery-tracker/internal/models"
	"delivery-tracker/internal/repository"
)

// SubmissionService contains the core business logic for delivery-point
// submissions and their operator review.
type SubmissionService struct {
	repo SubmissionRepository
	tax  TaxonomyReader
}

// SubmissionRepository interface for dependency injection
type SubmissionRepository interface {
	Append(ctx context.Context, s models.Submission) (models.Submission, error)
	ListAll(ctx context.Context) ([]models.Submission, error)
	ListPending(ctx context.Context) ([]models.Submission, error)
	GetByID(ctx context.Context, id int64) (models.Submission, error)
	Update(ctx context.Context, id int64, patch models.ReviewPatch) (models.Submission, error)
	Remove(ctx context.Context, id int64) error
}

// TaxonomyReader is the read-only taxonomy view used to validate a
// committed classification.
type TaxonomyReader interface {
	ListAll(ctx context.Context) ([]models.TaxonomyPath, error)
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo SubmissionRepository, tax TaxonomyReader) *SubmissionService {
	return &SubmissionService{repo: repo, tax: tax}
}

func validateNewSubmission(req models.NewSubmission) error {
	if req.Latitude == nil || req.Longitude == nil {
		return fmt.Errorf("%w: coordinate is required", ErrInvalidInput)
	}
	if *req.Latitude < -90 || *req.Latitude > 90 {
		return fmt.Errorf("%w: invalid latitude %f", ErrInvalidInput, *req.Latitude)
	}
	if *req.Longitude < -180 || *req.Longitude > 180 {
		return fmt.Errorf("%w: invalid longitude %f", ErrInvalidInput, *req.Longitude)
	}
	if strings.TrimSpace(req.PlaceName) == "" {
		return fmt.Errorf("%w: place name is required", ErrInvalidInput)
	}
	return nil
}

// Create validates and stores a new submission. The stored record is
// always pending and unclassified, regardless of any suggestion a
// classifier may have produced at submit time.
func (s *SubmissionService) Create(ctx context.Context, req models.NewSubmission) (models.Submission, error) {
	if err := validateNewSubmission(req); err != nil {
		return models.Submission{}, err
	}

	sub := models.Submission{
		SubmittedAt:    time.Now().UTC(),
		Latitude:       strconv.FormatFloat(*req.Latitude, 'f', -1, 64),
		Longitude:      strconv.FormatFloat(*req.Longitude, 'f', -1, 64),
		PlaceName:      strings.TrimSpace(req.PlaceName),
		Note:           req.Note,
		PhotoFlags:     req.PhotoFlags,
		ReviewStatus:   models.StatusPending,
		Classification: nil,
	}

	stored, err := s.repo.Append(ctx, sub)
	if err != nil {
		return models.Submission{}, fmt.Errorf("service: failed to store submission: %w", err)
	}
	return stored, nil
}

// ListAll returns every submission in insertion order.
func (s *SubmissionService) ListAll(ctx context.Context) ([]models.Submission, error) {
	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list submissions: %w", err)
	}
	return subs, nil
}

// ListPending returns submissions still awaiting review.
func (s *SubmissionService) ListPending(ctx context.Context) ([]models.Submission, error) {
	subs, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list pending submissions: %w", err)
	}
	return subs, nil
}

// Get returns one submission.
func (s *SubmissionService) Get(ctx context.Context, id int64) (models.Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Submission{}, ErrNotFound
		}
		return models.Submission{}, fmt.Errorf("service: failed to get submission: %w", err)
	}
	return sub, nil
}

// Review applies an operator's patch. A classification, when present,
// must be a prefix of some stored taxonomy path; otherwise the patch is
// rejected and the record stays as it was.
func (s *SubmissionService) Review(ctx context.Context, id int64, patch models.ReviewPatch) (models.Submission, error) {
	if patch.ReviewStatus != nil &&
		*patch.ReviewStatus != models.StatusPending &&
		*patch.ReviewStatus != models.StatusReviewed {
		return models.Submission{}, fmt.Errorf("%w: unknown review status %q", ErrInvalidInput, *patch.ReviewStatus)
	}

	if patch.Classification != nil {
		c := patch.Classification.Normalized()
		if c.Gate == models.Placeholder {
			return models.Submission{}, fmt.Errorf("%w: classification needs at least a gate", ErrInvalidInput)
		}
		paths, err := s.tax.ListAll(ctx)
		if err != nil {
			return models.Submission{}, fmt.Errorf("service: failed to load taxonomy: %w", err)
		}
		known := false
		for _, p := range paths {
			if c.IsPrefixOf(p) {
				known = true
				break
			}
		}
		if !known {
			return models.Submission{}, ErrUnknownClassification
		}
	}

	sub, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Submission{}, ErrNotFound
		}
		return models.Submission{}, fmt.Errorf("service: failed to update submission: %w", err)
	}
	return sub, nil
}

// Remove deletes one submission by id.
func (s *SubmissionService) Remove(ctx context.Context, id int64) error {
	err := s.repo.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to delete submission: %w", err)
	}
	return nil
}

// MapPoints projects mappable submissions into marker tuples. Rows
// whose stored coordinate cells do not parse are skipped, never an
// error, so one bad legacy row cannot break the map view.
func (s *SubmissionService) MapPoints(ctx context.Context) ([]models.MapPoint, error) {
	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list submissions: %w", err)
	}

	points := make([]models.MapPoint, 0, len(subs))
	for _, sub := range subs {
		lat, lon, ok := sub.Coordinate()
		if !ok {
			continue
		}
		points = append(points, models.MapPoint{
			Latitude:  lat,
			Longitude: lon,
			Label:     sub.PlaceName,
		})
	}
	return points, nil
}

// AdvanceForm moves a submission wizard forward one step, or keeps it
// on the input step with the list of problems to fix. Pure function;
// the client owns the state.
func (s *SubmissionService) AdvanceForm(state models.FormState) models.FormState {
	var problems []string
	if state.Latitude == nil || state.Longitude == nil {
		problems = append(problems, "coordinate is required")
	}
	if strings.TrimSpace(state.PlaceName) == "" {
		problems = append(problems, "place name is required")
	}

	next := state
	next.Problems = problems
	if len(problems) > 0 {
		next.Step = models.StepInput
		return next
	}

	switch state.Step {
	case models.StepInput:
		next.Step = models.StepClarify
	case models.StepClarify, models.StepSave:
		next.Step = models.StepSave
	default:
		next.Step = models.StepInput
	}
	return next
}

// SubmitForm runs the wizard to its end: the state is validated the
// same way AdvanceForm validates it, and a clean state is persisted as
// a new submission.
func (s *SubmissionService) SubmitForm(ctx context.Context, state models.FormState) (models.Submission, error) {
	next := s.AdvanceForm(state)
	if len(next.Problems) > 0 {
		return models.Submission{}, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(next.Problems, "; "))
	}
	return s.Create(ctx, state.ToNewSubmission())
}
