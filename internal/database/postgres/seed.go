package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedRepository reads and writes the reminder_seed table, the persisted
// list of users subscribed at startup.
type SeedRepository struct {
	db *pgxpool.Pool
}

// NewSeedRepository creates a new seed repository
func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{db: db}
}

// ListUserIDs returns every seeded user id, oldest first.
func (r *SeedRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT user_id
		FROM reminder_seed
		ORDER BY added_at, user_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeed, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeed, err)
	}
	return ids, nil
}

// AddUserID seeds a user. The bot only reads the table; this is for operator
// tooling and tests that populate it. Adding an existing id keeps its
// original position.
func (r *SeedRepository) AddUserID(ctx context.Context, userID string) error {
	query := `
		INSERT INTO reminder_seed (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddSeed, err)
	}
	return nil
}
