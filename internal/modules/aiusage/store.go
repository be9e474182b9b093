package aiusage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_usage persistence.
type Store struct {
	db    *pgxpool.Pool
	limit int
	now   func() time.Time
}

// NewStore returns a Store backed by the given connection pool. limit ≤ 0 uses DefaultMonthlyCalls.
func NewStore(db *pgxpool.Pool, limit int) *Store {
	if limit <= 0 {
		limit = DefaultMonthlyCalls
	}
	return &Store{db: db, limit: limit, now: time.Now}
}

func (s *Store) month() string {
	return s.now().Format("2006-01")
}

// UseCall atomically checks the monthly quota and deducts one call.
// It resets the counter to the limit when last_reset_month is behind the current month.
// Returns ErrQuotaExhausted when 0 rows are updated (quota exhausted or responder absent).
func (s *Store) UseCall(ctx context.Context, responder string) error {
	now := s.month()

	tag, err := s.db.Exec(ctx, `
		UPDATE ai_usage SET
			calls_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE calls_remaining - 1 END,
			last_reset_month = $1
		WHERE responder = $3 AND (last_reset_month < $1 OR calls_remaining > 0)
	`, now, s.limit, responder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureResponder inserts a new ai_usage row with the full allowance.
// If the row already exists the insert is silently skipped (ON CONFLICT DO NOTHING).
func (s *Store) EnsureResponder(ctx context.Context, responder string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_usage (responder, calls_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (responder) DO NOTHING
	`, responder, s.limit, s.month())
	return err
}

// Remaining reports the calls left for a responder in the stored month.
func (s *Store) Remaining(ctx context.Context, responder string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT calls_remaining FROM ai_usage WHERE responder = $1`, responder).Scan(&n)
	return n, err
}
