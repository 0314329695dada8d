package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"vinyl-record-house/internal/handler/middleware"
	"vinyl-record-house/internal/infra/db"
	"vinyl-record-house/internal/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the *.sql migrations")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	ran, err := db.Migrate(ctx, pool, os.DirFS(*dir))
	if err != nil {
		slog.Error("migration failed", "applied", ran, "error", err)
		cleanup()
		os.Exit(1)
	}
	slog.Info("migrations complete", "applied", len(ran))
}
