package service

import (
	"context"
	"fmt"
	"strings"

	"delivery-tracker/internal/models"

	"github.com/rs/zerolog/log"
)

// TextGenerator produces a text completion for a prompt. The Gemini
// client implements it; everything here must also work when no
// generator is wired at all.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ClassifierService suggests a taxonomy path for a pending submission
// by scanning its free text for names the taxonomy already knows. A
// suggestion is only made when the match is unambiguous, and it is
// never committed; the operator's review patch is the only write path.
type ClassifierService struct {
	subs SubmissionGetter
	tax  TaxonomyReader
	gen  TextGenerator // nil when AI is not configured
}

// SubmissionGetter interface for dependency injection
type SubmissionGetter interface {
	Get(ctx context.Context, id int64) (models.Submission, error)
}

// NewClassifierService creates a new classifier service. gen may be nil.
func NewClassifierService(subs SubmissionGetter, tax TaxonomyReader, gen TextGenerator) *ClassifierService {
	return &ClassifierService{subs: subs, tax: tax, gen: gen}
}

// Suggest computes a classification hint for one submission. Zero or
// ambiguous matches leave the corresponding field blank; an AI comment
// is attached when a generator is configured and reachable, and its
// absence or failure is never an error.
func (s *ClassifierService) Suggest(ctx context.Context, id int64) (models.SuggestedPath, error) {
	sub, err := s.subs.Get(ctx, id)
	if err != nil {
		return models.SuggestedPath{}, err
	}

	paths, err := s.tax.ListAll(ctx)
	if err != nil {
		return models.SuggestedPath{}, fmt.Errorf("service: failed to load taxonomy: %w", err)
	}

	haystack := strings.ToLower(sub.PlaceName + " " + sub.Note)

	var suggestion models.SuggestedPath
	if gate, ok := uniqueMention(haystack, paths, func(p models.TaxonomyPath) string { return p.Gate }); ok {
		suggestion.Gate = gate
		suggestion.Source = "heuristic"

		var below []models.TaxonomyPath
		for _, p := range paths {
			if p.Gate == gate {
				below = append(below, p)
			}
		}
		if alley, ok := uniqueMention(haystack, below, func(p models.TaxonomyPath) string { return p.MainAlley }); ok {
			suggestion.MainAlley = alley
		}
	}

	if s.gen != nil {
		comment, err := s.aiComment(ctx, sub, paths)
		if err != nil {
			log.Warn().Err(err).Int64("submission_id", id).Msg("AI suggestion unavailable")
		} else {
			suggestion.AIComment = comment
		}
	}

	return suggestion, nil
}

// uniqueMention returns the single distinct taxonomy value literally
// present in the haystack, or ok=false when none or several are.
func uniqueMention(haystack string, paths []models.TaxonomyPath, field func(models.TaxonomyPath) string) (string, bool) {
	seen := make(map[string]struct{})
	var found string
	for _, p := range paths {
		v := field(p)
		if v == "" || v == models.Placeholder {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if strings.Contains(haystack, strings.ToLower(v)) {
			if found != "" && found != v {
				return "", false
			}
			found = v
		}
	}
	return found, found != ""
}

func (s *ClassifierService) aiComment(ctx context.Context, sub models.Submission, paths []models.TaxonomyPath) (string, error) {
	gates := make(map[string]struct{})
	for _, p := range paths {
		if p.Gate != models.Placeholder {
			gates[p.Gate] = struct{}{}
		}
	}
	names := make([]string, 0, len(gates))
	for g := range gates {
		names = append(names, g)
	}

	prompt := fmt.Sprintf(
		"Known gates: %s. A delivery note reads %q with place name %q. "+
			"In one short sentence, which gate and alley does this most likely belong to? "+
			"Answer 'unclear' if the note does not say.",
		strings.Join(names, ", "), sub.Note, sub.PlaceName)

	return s.gen.Generate(ctx, prompt)
}
