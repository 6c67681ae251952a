package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// GetEntry returns a single corpus entry.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.LocalizedEntry, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}
