// Command server runs the HTTP API: text analysis, leveled rendering,
// word lists, and vocabulary lookups.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/patri2022onw/GermanTextLevel/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
