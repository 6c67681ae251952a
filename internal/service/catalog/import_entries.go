package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
	"github.com/heartmarshall/locbundle-backend/internal/service/reconcile"
)

// ImportResult summarizes a source file import.
type ImportResult struct {
	Language domain.LanguageCode
	Imported int
	Skipped  int
}

// ImportEntries stores every key/value line of a source file as a new corpus
// entry. The language comes from the file name. Lines without a key/value
// pair are skipped. All entries are created in one transaction.
func (s *Service) ImportEntries(ctx context.Context, input ImportInput) (*ImportResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &ImportResult{Language: domain.LanguageCodeFromFilename(input.FileName)}

	var entries []domain.LocalizedEntry
	err := reconcile.ScanSource(ctx, input.File, s.maxLineBytes, func(lineNumber int, parsed domain.ParsedLine) error {
		if parsed.Key == "" {
			result.Skipped++
			return nil
		}

		text := parsed.Value
		candidate := EntryInput{
			Key:           parsed.Key,
			Text:          &text,
			Language:      result.Language.String(),
			GameFranchise: domain.StringPtr(input.Franchise),
			GameName:      domain.StringPtr(input.Name),
		}
		if errs := candidate.fieldErrors(); len(errs) > 0 {
			s.log.DebugContext(ctx, "import line rejected",
				slog.Int("line", lineNumber),
				slog.String("reason", errs[0].Message),
			)
			result.Skipped++
			return nil
		}

		entries = append(entries, candidate.toDomain())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input.FileName, err)
	}

	if len(entries) == 0 {
		return result, nil
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, createErr := s.entries.CreateBatch(txCtx, entries)
		if createErr != nil {
			return fmt.Errorf("create entries: %w", createErr)
		}
		result.Imported = len(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entries imported",
		slog.String("file", input.FileName),
		slog.String("language", result.Language.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
