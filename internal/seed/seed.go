// Package seed builds the initial reminder pool from configuration and, when
// a database is configured, from the reminder_seed table.
package seed

import (
	"context"
	"fmt"
	"log/slog"
)

// Source lists persisted subscriber ids.
type Source interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// Merge concatenates the lists, keeping the first occurrence of each id and
// dropping empty ids.
func Merge(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, id := range list {
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Load returns the configured ids followed by those from src. A nil src
// means no database is configured.
func Load(ctx context.Context, configured []string, src Source) ([]string, error) {
	if src == nil {
		ids := Merge(configured)
		slog.Info(LogMsgSeedLoaded, "configured", len(configured), "stored", 0, "total", len(ids))
		return ids, nil
	}

	stored, err := src.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSeed, err)
	}

	ids := Merge(configured, stored)
	slog.Info(LogMsgSeedLoaded, "configured", len(configured), "stored", len(stored), "total", len(ids))
	return ids, nil
}
