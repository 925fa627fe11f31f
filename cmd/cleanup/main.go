// Command cleanup removes drafts that have not been updated for the
// configured number of days (drafts.max_stale_days). It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/draftstore-backend/internal/adapter/postgres"
	draftrepo "github.com/heartmarshall/draftstore-backend/internal/adapter/postgres/draft"
	"github.com/heartmarshall/draftstore-backend/internal/app"
	"github.com/heartmarshall/draftstore-backend/internal/config"
	"github.com/heartmarshall/draftstore-backend/internal/metrics"
	draftsvc "github.com/heartmarshall/draftstore-backend/internal/service/draft"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := draftsvc.NewService(logger, draftrepo.New(pool), metrics.Nop{}, draftsvc.Config{
		DefaultPageSize:  cfg.Drafts.DefaultPageSize,
		MaxPageSize:      cfg.Drafts.MaxPageSize,
		MaxDocumentBytes: cfg.Drafts.MaxDocumentBytes,
	})

	maxAge := time.Duration(cfg.Drafts.MaxStaleDays) * 24 * time.Hour

	deleted, err := svc.CleanupStale(ctx, maxAge)
	if err != nil {
		logger.Error("stale draft cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("max_stale_days", cfg.Drafts.MaxStaleDays),
		)
		os.Exit(1)
	}

	logger.Info("stale draft cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Int("max_stale_days", cfg.Drafts.MaxStaleDays),
	)
}
