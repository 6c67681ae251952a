package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// ListEntriesResult is one page of corpus entries plus the unpaged total.
type ListEntriesResult struct {
	Items []domain.LocalizedEntry
	Total int
}

// ListEntries returns corpus entries matching the input filters in stable
// corpus order.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) (*ListEntriesResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := input.filter()

	items, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	total := len(items)
	if filter.Limit > 0 || filter.Offset > 0 {
		total, err = s.entries.Count(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("count entries: %w", err)
		}
	}

	return &ListEntriesResult{Items: items, Total: total}, nil
}
