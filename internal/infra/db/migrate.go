package db

import (
	"context"
	"io/fs"
	"log/slog"

	"vinyl-record-house/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
)

// Migrate applies the pending goose migrations of fsys and returns the files it ran.
// A Postgres advisory lock serialises concurrent callers, so replicas started with
// DB_AUTO_MIGRATE at the same time apply each file once.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) ([]string, error) {
	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return nil, errs.Wrap(err, "create migration lock")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys, goose.WithSessionLocker(locker))
	if err != nil {
		return nil, errs.Wrap(err, "create migration provider")
	}

	results, err := provider.Up(ctx)
	ran := make([]string, 0, len(results))
	for _, res := range results {
		if res.Error != nil {
			continue
		}
		ran = append(ran, res.Source.Path)
		slog.Info("migration applied", "version", res.Source.Version, "file", res.Source.Path, "duration", res.Duration)
	}
	if err != nil {
		return ran, errs.Wrap(err, "apply migrations")
	}
	return ran, nil
}
