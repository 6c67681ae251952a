package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/locbundle-backend/internal/config"
	"github.com/heartmarshall/locbundle-backend/internal/domain"
	"github.com/heartmarshall/locbundle-backend/internal/service/reconcile"
)

type entryRepo interface {
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.LocalizedEntry, error)
	Count(ctx context.Context, filter domain.EntryFilter) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LocalizedEntry, error)
	Create(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error)
	CreateBatch(ctx context.Context, entries []domain.LocalizedEntry) ([]domain.LocalizedEntry, error)
	Update(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides corpus management operations.
type Service struct {
	entries      entryRepo
	tx           txManager
	matcher      *reconcile.Matcher
	maxLineBytes int
	log          *slog.Logger
}

// NewService creates a new catalog Service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	tx txManager,
	cfg config.ReconcileConfig,
) *Service {
	return &Service{
		entries:      entries,
		tx:           tx,
		matcher:      reconcile.NewMatcher(domain.MatchMode(cfg.MatchMode)),
		maxLineBytes: cfg.MaxLineBytes,
		log:          log.With("service", "catalog"),
	}
}
