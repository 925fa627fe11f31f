package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/draftstore-backend/internal/adapter/postgres"
	draftrepo "github.com/heartmarshall/draftstore-backend/internal/adapter/postgres/draft"
	"github.com/heartmarshall/draftstore-backend/internal/auth"
	"github.com/heartmarshall/draftstore-backend/internal/config"
	"github.com/heartmarshall/draftstore-backend/internal/metrics"
	draftsvc "github.com/heartmarshall/draftstore-backend/internal/service/draft"
	"github.com/heartmarshall/draftstore-backend/internal/transport/middleware"
	"github.com/heartmarshall/draftstore-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the draft service behind the HTTP API and serves until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	users := auth.NewTokenManager(cfg.Auth.UserTokenSecret, cfg.Auth.UserTokenIssuer, cfg.Auth.TokenTTL)
	services := auth.NewTokenManager(cfg.Auth.ServiceTokenSecret, cfg.Auth.ServiceTokenIssuer, cfg.Auth.TokenTTL)
	resolver := auth.NewResolver(users, services, auth.ResolverConfig{
		MinSecretLength: cfg.Auth.MinSecretLength,
		AllowedServices: cfg.Auth.AllowedServices(),
	})

	drafts := draftsvc.NewService(logger, draftrepo.New(pool), collector, draftsvc.Config{
		DefaultPageSize:  cfg.Drafts.DefaultPageSize,
		MaxPageSize:      cfg.Drafts.MaxPageSize,
		MaxDocumentBytes: cfg.Drafts.MaxDocumentBytes,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, collector.RateLimited)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		cfg:      cfg,
		logger:   logger,
		drafts:   rest.NewDraftHandler(drafts, resolver, cfg.Drafts.MaxDocumentBytes, logger),
		health:   rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{"database": pool}),
		metrics:  collector,
		gatherer: reg,
		limiter:  limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
