package logintoken

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/integration/database/pg"
)

// querier is the subset of pgxpool.Pool the store needs.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore persists login tokens in the login_tokens table.
type PostgresStore struct {
	db querier
}

// NewPostgresStore creates a Postgres-backed login token store.
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

func (s *PostgresStore) Create(ctx context.Context, t *Token) error {
	query := `
		INSERT INTO login_tokens (user_id, token_series, token, ip_issued, ip_last, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := s.q(ctx).QueryRow(ctx, query,
		t.UserID, t.Series, t.Value, t.IPIssued, t.IPLast, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert login token: %w", err)
	}
	return nil
}

// Consume deletes the matching row and returns it in a single statement.
// DELETE ... RETURNING runs atomically, so when two requests race to use
// the same cookie only one gets the row back; the loser sees ErrNotFound
// and must fail closed.
func (s *PostgresStore) Consume(ctx context.Context, token, series string) (*Token, error) {
	query := `
		DELETE FROM login_tokens
		WHERE token = $1 AND token_series = $2
		RETURNING id, user_id, token_series, token, ip_issued, ip_last, created_at`

	t := &Token{}
	err := s.q(ctx).QueryRow(ctx, query, token, series).Scan(
		&t.ID, &t.UserID, &t.Series, &t.Value, &t.IPIssued, &t.IPLast, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("consume login token: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) Delete(ctx context.Context, token, series string) error {
	_, err := s.q(ctx).Exec(ctx, `
		DELETE FROM login_tokens WHERE token = $1 AND token_series = $2`,
		token, series)
	if err != nil {
		return fmt.Errorf("delete login token: %w", err)
	}
	return nil
}
