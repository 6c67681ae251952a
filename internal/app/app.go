package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/locbundle-backend/internal/config"
	"github.com/heartmarshall/locbundle-backend/internal/service/catalog"
	"github.com/heartmarshall/locbundle-backend/internal/service/reconcile"
	"github.com/heartmarshall/locbundle-backend/internal/transport/middleware"
	"github.com/heartmarshall/locbundle-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration from the
// environment and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, NewLogger(cfg.Log))
}

// Serve opens the corpus store, builds the services and runs the HTTP server
// until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Database.Driver),
	)

	store, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, store, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewHandler wires services and routes over store and wraps them in the
// middleware chain Recovery → RequestID → Logger → CORS.
func NewHandler(cfg *config.Config, store *Store, logger *slog.Logger) http.Handler {
	catalogSvc := catalog.NewService(logger, store.Entries, store.Tx, cfg.Reconcile)
	reconcileSvc := reconcile.NewService(logger, store.Entries, cfg.Reconcile)

	mux := http.NewServeMux()

	health := rest.NewHealthHandler(store, store.Driver, BuildVersion())
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	rest.NewTranslationHandler(catalogSvc, reconcileSvc, cfg.Reconcile.MaxUploadBytes, logger).Register(mux)

	var cors middleware.Middleware
	if cfg.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(cfg.CORS)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		cors,
	)(mux)
}
