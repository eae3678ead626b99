package service

import (
	"context"
	"fmt"
)

// SummaryService produces a one-sentence note summary via the text
// generator. With no generator configured it degrades to an empty
// summary instead of failing.
type SummaryService struct {
	gen TextGenerator // nil when AI is not configured
}

// NewSummaryService creates a new summary service. gen may be nil.
func NewSummaryService(gen TextGenerator) *SummaryService {
	return &SummaryService{gen: gen}
}

// Enabled reports whether a generator is configured.
func (s *SummaryService) Enabled() bool {
	return s.gen != nil
}

// Summarize condenses a coordinate and note into one short sentence.
// Returns "" with no error when AI is not configured.
func (s *SummaryService) Summarize(ctx context.Context, lat, lon float64, note string) (string, error) {
	if s.gen == nil {
		return "", nil
	}

	prompt := fmt.Sprintf("Summarize coordinate %.6f, %.6f and the note %q into one short sentence.", lat, lon, note)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("service: failed to summarize note: %w", err)
	}
	return text, nil
}
