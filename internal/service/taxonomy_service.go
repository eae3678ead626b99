package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"delivery-tracker/internal/models"
	"delivery-tracker/internal/repository"
)

// TaxonomyService contains the core business logic for the location
// taxonomy: the flat path table and the cascading next-level filter.
type TaxonomyService struct {
	repo TaxonomyRepository

	// Read-mostly snapshot of the path table. Every write invalidates
	// it synchronously before returning, so a reviewer never sees a
	// stale candidate list.
	mu     sync.Mutex
	cached []models.TaxonomyPath
	valid  bool
}

// TaxonomyRepository interface for dependency injection
type TaxonomyRepository interface {
	ListAll(ctx context.Context) ([]models.TaxonomyPath, error)
	Append(ctx context.Context, p models.TaxonomyPath) error
	RemoveAt(ctx context.Context, index int) error
}

// NewTaxonomyService creates a new taxonomy service
func NewTaxonomyService(repo TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

func (s *TaxonomyService) load(ctx context.Context) ([]models.TaxonomyPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.valid {
		return s.cached, nil
	}

	paths, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load taxonomy: %w", err)
	}
	s.cached = paths
	s.valid = true
	return paths, nil
}

func (s *TaxonomyService) invalidate() {
	s.mu.Lock()
	s.valid = false
	s.cached = nil
	s.mu.Unlock()
}

// ListAll returns every stored path in insertion order.
func (s *TaxonomyService) ListAll(ctx context.Context) ([]models.TaxonomyPath, error) {
	return s.load(ctx)
}

// ListChildren returns the sorted, deduplicated values observed at the
// next level below the given prefix. Prefix values are matched in
// hierarchy order (gate, road, road side, main alley, main alley side,
// sub alley). Placeholder values are never candidates. An unmatched
// prefix yields an empty list, not an error.
func (s *TaxonomyService) ListChildren(ctx context.Context, prefix []string) ([]string, error) {
	if len(prefix) >= models.PathLevels {
		return []string{}, nil
	}

	paths, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	level := len(prefix)
	seen := make(map[string]struct{})
	for _, p := range paths {
		levels := p.Normalized().Levels()
		matched := true
		for i, want := range prefix {
			if levels[i] != want {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		v := levels[level]
		if v == models.Placeholder {
			continue
		}
		seen[v] = struct{}{}
	}

	children := make([]string, 0, len(seen))
	for v := range seen {
		children = append(children, v)
	}
	sort.Strings(children)
	return children, nil
}

// Append adds one full path to the end of the table. Paths equal to an
// existing one (after placeholder normalization) are rejected.
func (s *TaxonomyService) Append(ctx context.Context, p models.TaxonomyPath) error {
	p = p.Normalized()
	if p.Gate == models.Placeholder {
		return fmt.Errorf("%w: gate is required", ErrInvalidInput)
	}

	existing, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.Equal(p) {
			return ErrDuplicatePath
		}
	}

	if err := s.repo.Append(ctx, p); err != nil {
		return fmt.Errorf("service: failed to append taxonomy path: %w", err)
	}
	s.invalidate()
	return nil
}

// RemoveAt deletes the path at the given store position.
func (s *TaxonomyService) RemoveAt(ctx context.Context, index int) error {
	err := s.repo.RemoveAt(ctx, index)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to remove taxonomy path: %w", err)
	}
	s.invalidate()
	return nil
}

// BulkInsert validates a whole entry tree, flattens it into full paths
// and appends each one, skipping paths that already exist. It returns
// how many were inserted and how many skipped.
func (s *TaxonomyService) BulkInsert(ctx context.Context, req models.BulkTaxonomyRequest) (inserted, skipped int, err error) {
	if strings.TrimSpace(req.Gate) == "" {
		return 0, 0, fmt.Errorf("%w: gate is required", ErrInvalidInput)
	}
	for _, entry := range req.Entries {
		if strings.TrimSpace(entry.MainAlley) == "" {
			return 0, 0, fmt.Errorf("%w: main alley name is required on every entry", ErrInvalidInput)
		}
		for _, sub := range entry.SubAlleys {
			if strings.TrimSpace(sub.SubAlley) == "" {
				return 0, 0, fmt.Errorf("%w: sub alley name is required on every entry", ErrInvalidInput)
			}
		}
	}

	existing, err := s.load(ctx)
	if err != nil {
		return 0, 0, err
	}
	known := make([]models.TaxonomyPath, len(existing))
	copy(known, existing)

	for _, p := range req.Flatten() {
		dup := false
		for _, e := range known {
			if e.Equal(p) {
				dup = true
				break
			}
		}
		if dup {
			skipped++
			continue
		}
		if err := s.repo.Append(ctx, p); err != nil {
			s.invalidate()
			return inserted, skipped, fmt.Errorf("service: failed to append taxonomy path: %w", err)
		}
		known = append(known, p)
		inserted++
	}

	if inserted > 0 {
		s.invalidate()
	}
	return inserted, skipped, nil
}
