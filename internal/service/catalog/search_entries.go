package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// SearchEntries returns every corpus entry whose text, franchise and name
// match the input under the reconciliation normalization rules. Empty
// Franchise or Name is not applied.
func (s *Service) SearchEntries(ctx context.Context, input SearchInput) ([]domain.LocalizedEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	corpus, err := s.entries.List(ctx, domain.EntryFilter{})
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	matches := s.matcher.FindMatches(corpus, domain.MatchContext{
		Franchise: input.Franchise,
		Name:      input.Name,
		Text:      input.Text,
	})
	if matches == nil {
		matches = []domain.LocalizedEntry{}
	}
	return matches, nil
}
