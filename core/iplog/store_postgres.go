package iplog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/integration/database/pg"
)

// querier is the subset of pgxpool.Pool the store needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore persists the IP log in the ip_log table.
type PostgresStore struct {
	db querier
}

// NewPostgresStore creates a Postgres-backed IP log store.
func NewPostgresStore(db querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// q returns the transaction carried by the context when one is present,
// otherwise the store's own pool.
func (s *PostgresStore) q(ctx context.Context) querier {
	if tx, ok := pg.TxFromContext(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Record(ctx context.Context, userID uuid.UUID, ip string, now time.Time) error {
	// Single round-trip upsert keyed on (user_id, ip).
	query := `
		INSERT INTO ip_log (user_id, ip, first_used, last_used, times_used)
		VALUES ($1, $2, $3, $3, 1)
		ON CONFLICT (user_id, ip)
		DO UPDATE SET last_used = EXCLUDED.last_used, times_used = ip_log.times_used + 1`

	if _, err := s.q(ctx).Exec(ctx, query, userID, ip, now); err != nil {
		return fmt.Errorf("record ip: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	rows, err := s.q(ctx).Query(ctx, `
		SELECT user_id, ip, first_used, last_used, times_used
		FROM ip_log WHERE user_id = $1
		ORDER BY last_used DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list ip log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.IP, &e.FirstUsed, &e.LastUsed, &e.TimesUsed); err != nil {
			return nil, fmt.Errorf("scan ip log entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ip log: %w", err)
	}
	return entries, nil
}
