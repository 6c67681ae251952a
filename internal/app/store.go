package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/locbundle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/locbundle-backend/internal/adapter/postgres/localized"
	"github.com/heartmarshall/locbundle-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/locbundle-backend/internal/config"
	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// EntryStore is the corpus persistence surface shared by every driver.
type EntryStore interface {
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.LocalizedEntry, error)
	Count(ctx context.Context, filter domain.EntryFilter) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LocalizedEntry, error)
	Create(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error)
	CreateBatch(ctx context.Context, entries []domain.LocalizedEntry) ([]domain.LocalizedEntry, error)
	Update(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TxRunner runs fn in a transaction joined by store calls made with its context.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles the corpus store of the configured driver.
type Store struct {
	Driver  string
	Entries EntryStore
	Tx      TxRunner

	ping  func(ctx context.Context) error
	close func()
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the store's connections.
func (s *Store) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// OpenStore connects to the corpus store selected by cfg.Driver. Postgres
// migrations run only when cfg.AutoMigrate is set; the embedded SQLite
// database is always migrated on open.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.AutoMigrate {
			applied, err := postgres.Migrate(ctx, cfg.DSN)
			if err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("migrations applied", slog.String("driver", cfg.Driver), slog.Int("count", applied))
		}

		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("corpus store connected", slog.String("driver", cfg.Driver))

		return &Store{
			Driver:  cfg.Driver,
			Entries: localized.New(pool),
			Tx:      postgres.NewTxManager(pool),
			ping:    pool.Ping,
			close:   pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("corpus store opened",
			slog.String("driver", cfg.Driver),
			slog.String("path", db.Path()),
		)

		return &Store{
			Driver:  cfg.Driver,
			Entries: db,
			Tx:      db,
			ping:    db.Ping,
			close:   func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Migrate applies pending migrations for the configured driver and returns
// how many ran.
func Migrate(ctx context.Context, cfg config.DatabaseConfig) (int, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Migrate(ctx, cfg.DSN)
	case config.DriverSQLite:
		db, err := sqlite.Connect(ctx, cfg.SQLitePath)
		if err != nil {
			return 0, err
		}
		defer db.Close()
		return db.Migrate(ctx)
	default:
		return 0, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
