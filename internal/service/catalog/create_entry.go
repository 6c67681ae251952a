package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// CreateEntry adds one entry to the corpus.
func (s *Service) CreateEntry(ctx context.Context, input EntryInput) (*domain.LocalizedEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.entries.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", e.ID.String()),
		slog.String("key", e.Key),
		slog.String("language", e.Language.String()),
	)

	return e, nil
}
