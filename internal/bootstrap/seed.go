package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/resetbot/internal/config"
	"github.com/osse101/resetbot/internal/database"
	"github.com/osse101/resetbot/internal/database/postgres"
	"github.com/osse101/resetbot/internal/seed"
)

// LoadReminderSeed returns the initial reminder pool. When DATABASE_URL is
// set it connects, applies migrations and merges the stored ids after the
// configured ones. The returned pool is nil without a database; otherwise the
// caller owns it.
func LoadReminderSeed(ctx context.Context, cfg *config.Config) ([]string, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		slog.Info(LogMsgSeedStoreDisabled)
		ids, err := seed.Load(ctx, cfg.DefaultReminderPool, nil)
		return ids, nil, err
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.DefaultMaxConnections,
		database.DefaultMaxConnIdle, database.DefaultMaxConnLife)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgSeedStore, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgSeedStore, err)
	}

	ids, err := seed.Load(ctx, cfg.DefaultReminderPool, postgres.NewSeedRepository(pool))
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return ids, pool, nil
}
