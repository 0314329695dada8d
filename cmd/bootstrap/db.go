package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"vinyl-record-house/internal/infra/db"
	"vinyl-record-house/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool and, when DB_AUTO_MIGRATE is set, brings the schema up to date
// before any other OnStart hook touches the tables.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.DB.AutoMigrate {
				return nil
			}
			ran, err := db.Migrate(ctx, pool, os.DirFS(cfg.DB.MigrationsDir))
			if err != nil {
				return err
			}
			logger.Info("schema migrated on startup", "dir", cfg.DB.MigrationsDir, "applied", ran)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
