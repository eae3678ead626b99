package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"delivery-tracker/internal/config"
	"delivery-tracker/internal/models"
)

var digitRuns = regexp.MustCompile(`\d+`)

// SearchService ranks stored submissions against a free-text query.
// The scoring is heuristic by design: "plausibly relevant first" is the
// only promise, and the weights are deployment-tunable.
type SearchService struct {
	repo SubmissionLister
	cfg  config.SearchConfig
}

// SubmissionLister interface for dependency injection
type SubmissionLister interface {
	ListAll(ctx context.Context) ([]models.Submission, error)
}

// NewSearchService creates a new search service
func NewSearchService(repo SubmissionLister, cfg config.SearchConfig) *SearchService {
	return &SearchService{repo: repo, cfg: cfg}
}

// Search loads all submissions and returns them ranked against the query.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.Submission, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list submissions: %w", err)
	}
	return s.Rank(records, query), nil
}

// Rank scores each record against the query and returns the matches in
// descending score order, stable on ties. An empty or whitespace-only
// query is the browse-all mode: the input comes back unchanged.
//
// Per record the score is the sum of:
//   - substring weight when the whole lowercased query occurs in the
//     record's haystack (place name, note and classified path names),
//   - digit weight for every digit run in the query found in the
//     haystack (house and unit numbers),
//   - ratio*fuzzy weight when the similarity ratio between query and
//     place name exceeds the threshold.
//
// Records at or below the minimum score are dropped as noise.
func (s *SearchService) Rank(records []models.Submission, query string) []models.Submission {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	runs := digitRuns.FindAllString(q, -1)

	type scored struct {
		sub   models.Submission
		score int
	}
	var matches []scored
	for _, sub := range records {
		haystack := buildHaystack(sub)

		score := 0
		if strings.Contains(haystack, q) {
			score += s.cfg.SubstringWeight
		}
		for _, run := range runs {
			if strings.Contains(haystack, run) {
				score += s.cfg.DigitWeight
			}
		}
		if ratio := similarity(q, strings.ToLower(sub.PlaceName)); ratio > s.cfg.FuzzyThreshold {
			score += int(ratio * s.cfg.FuzzyWeight)
		}

		if score > s.cfg.MinScore {
			matches = append(matches, scored{sub: sub, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]models.Submission, len(matches))
	for i, m := range matches {
		result[i] = m.sub
	}
	return result
}

func buildHaystack(sub models.Submission) string {
	parts := []string{sub.PlaceName, sub.Note}
	if c := sub.Classification; c != nil {
		for _, v := range []string{c.Gate, c.MainAlley, c.SubAlley} {
			if v != "" && v != models.Placeholder {
				parts = append(parts, v)
			}
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
