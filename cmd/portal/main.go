// Command portal serves the Dhaka-17 election information portal API.
//
// Usage:
//
//	portal
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables.
// A .env file in the working directory is loaded if present.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fsferdows/dhaka17-portal/internal/app"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("portal exited", slog.Any("error", err))
		os.Exit(1)
	}
}
