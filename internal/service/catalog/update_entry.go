package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// UpdateEntry replaces the writable fields of an existing entry.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.LocalizedEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.LocalizedEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, getErr := s.entries.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get entry: %w", getErr)
		}

		e := input.toDomain()
		e.ID = existing.ID
		e.CreatedAt = existing.CreatedAt

		var updateErr error
		updated, updateErr = s.entries.Update(txCtx, e)
		if updateErr != nil {
			return fmt.Errorf("update entry: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", updated.ID.String()),
		slog.String("key", updated.Key),
	)

	return updated, nil
}
