// Command draftstore serves the per-user draft storage HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/draftstore-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("draftstore: %v", err)
	}
}
