// Command migrate manages the database schema using the embedded migrations.
//
// Usage:
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the most recent migration
//	migrate status   list migrations and whether they are applied
//
// Requires DATABASE_DSN (or a config file providing database.dsn).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/draftstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/draftstore-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|status")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg.Database.DSN, os.Args[1]); err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, dsn, command string) error {
	db, err := postgres.OpenDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		printResults(results)
		if len(results) == 0 {
			fmt.Println("no pending migrations")
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		printResults([]*goose.MigrationResult{result})
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = "applied " + s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d  %-40s  %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
	return nil
}

func printResults(results []*goose.MigrationResult) {
	for _, r := range results {
		fmt.Printf("%-4s %05d  %s  (%s)\n", r.Direction, r.Source.Version, r.Source.Path, r.Duration)
	}
}
