package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/locbundle-backend/internal/config"
	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

type corpusStore interface {
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.LocalizedEntry, error)
}

// NothingToBundleError reports a reconciliation where no source line matched
// the corpus. It unwraps to domain.ErrNothingToBundle.
type NothingToBundleError struct {
	NotFound int
}

func (e *NothingToBundleError) Error() string {
	return fmt.Sprintf("nothing to bundle: %d lines not found in corpus", e.NotFound)
}

func (e *NothingToBundleError) Unwrap() error { return domain.ErrNothingToBundle }

// Service runs the reconcile pipeline: corpus snapshot, line
// classification, bundle building and archive assembly.
type Service struct {
	log       *slog.Logger
	store     corpusStore
	processor *Processor
	builder   *BundleBuilder
}

// NewService creates a new reconcile Service.
func NewService(log *slog.Logger, store corpusStore, cfg config.ReconcileConfig) *Service {
	matcher := NewMatcher(domain.MatchMode(cfg.MatchMode))
	return &Service{
		log:   log.With("service", "reconcile"),
		store: store,
		processor: NewProcessor(log, matcher, ProcessorOptions{
			SkipUnparsable: cfg.SkipUnparsable,
			MaxLineBytes:   cfg.MaxLineBytes,
		}),
		builder: NewBundleBuilder(cfg.ExcludedLanguages),
	}
}

// ReconcileOutput is the outcome of a successful reconciliation.
type ReconcileOutput struct {
	Result  *domain.ReconcileResult
	Bundles []domain.Bundle
	Archive []byte
}

// Reconcile classifies every significant line of in.File against a fresh
// corpus snapshot and packages the bundles into a zip archive. When no line
// matches the corpus it returns *NothingToBundleError.
func (s *Service) Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	corpus, err := s.store.List(ctx, domain.EntryFilter{})
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	result, err := s.processor.Process(ctx, in.File, ProcessContext{
		Franchise:      in.Franchise,
		Name:           in.Name,
		SourceFileName: in.FileName,
	}, corpus)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", in.FileName, err)
	}

	if len(result.Found) == 0 {
		s.log.InfoContext(ctx, "nothing to bundle",
			slog.String("file", in.FileName),
			slog.Int("not_found", len(result.NotFound)),
		)
		return nil, &NothingToBundleError{NotFound: len(result.NotFound)}
	}

	bundles := s.builder.Build(*result, corpus)

	archive, err := Assemble(bundles)
	if err != nil {
		return nil, fmt.Errorf("assemble archive: %w", err)
	}

	s.log.InfoContext(ctx, "reconciled",
		slog.String("file", in.FileName),
		slog.Int("corpus", len(corpus)),
		slog.Int("found", len(result.Found)),
		slog.Int("not_found", len(result.NotFound)),
		slog.Int("bundles", len(bundles)),
		slog.Int("archive_bytes", len(archive)),
	)

	return &ReconcileOutput{
		Result:  result,
		Bundles: bundles,
		Archive: archive,
	}, nil
}
