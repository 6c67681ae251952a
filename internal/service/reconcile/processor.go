package reconcile

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

const (
	defaultMaxLineBytes = 1 << 20
	utf8BOM             = "\ufeff"
)

// ProcessContext carries the per-upload parameters of a reconciliation.
type ProcessContext struct {
	Franchise      string
	Name           string
	SourceFileName string
}

// ProcessorOptions tune line handling.
type ProcessorOptions struct {
	// SkipUnparsable drops significant lines that hold no key/value pair
	// instead of classifying them as empty not-found entries.
	SkipUnparsable bool
	// MaxLineBytes bounds a single source line. Zero means 1 MiB.
	MaxLineBytes int
}

// Processor streams a source file and classifies each line against a corpus.
type Processor struct {
	log     *slog.Logger
	matcher *Matcher
	opts    ProcessorOptions
}

// NewProcessor creates a Processor.
func NewProcessor(logger *slog.Logger, matcher *Matcher, opts ProcessorOptions) *Processor {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = defaultMaxLineBytes
	}
	return &Processor{
		log:     logger.With("component", "processor"),
		matcher: matcher,
		opts:    opts,
	}
}

// Process reads r line by line. A line matching a corpus entry contributes
// that entry to Found; any other line is synthesized into NotFound with the
// language taken from pctx.SourceFileName. The corpus is never modified.
func (p *Processor) Process(ctx context.Context, r io.Reader, pctx ProcessContext, corpus []domain.LocalizedEntry) (*domain.ReconcileResult, error) {
	language := domain.LanguageCodeFromFilename(pctx.SourceFileName)

	result := &domain.ReconcileResult{
		Found:    []domain.LocalizedEntry{},
		NotFound: []domain.LocalizedEntry{},
	}

	err := ScanSource(ctx, r, p.opts.MaxLineBytes, func(lineNumber int, parsed domain.ParsedLine) error {
		if parsed.Key == "" && parsed.Value == "" {
			p.log.DebugContext(ctx, "line has no key/value pair",
				slog.Int("line", lineNumber),
				slog.Bool("skipped", p.opts.SkipUnparsable),
			)
			if p.opts.SkipUnparsable {
				return nil
			}
		}

		match, ok := p.matcher.FirstMatch(corpus, domain.MatchContext{
			Franchise: pctx.Franchise,
			Name:      pctx.Name,
			Text:      parsed.Value,
		})
		if ok {
			result.Found = append(result.Found, match)
			return nil
		}

		p.log.DebugContext(ctx, "no corpus match",
			slog.Int("line", lineNumber),
			slog.String("key", parsed.Key),
		)

		text := parsed.Value
		result.NotFound = append(result.NotFound, domain.LocalizedEntry{
			Key:           parsed.Key,
			Text:          &text,
			Language:      language,
			GameFranchise: domain.StringPtr(pctx.Franchise),
			GameName:      domain.StringPtr(pctx.Name),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
