package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/integration/database/pg"
)

// querier is the subset of pgxpool.Pool the store needs. Accepting the
// interface keeps the store usable with pools, connections, and
// transactions alike.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore persists accounts in the users table.
type PostgresStore struct {
	db querier
}

// NewPostgresStore creates a Postgres-backed user store.
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

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (email, team_name, password_hash, class, enabled, kind)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := s.q(ctx).QueryRow(ctx, query,
		u.Email, u.TeamName, u.PasswordHash, int(u.Class), u.Enabled, u.Kind,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.get(ctx, `
		SELECT id, email, team_name, password_hash, class, enabled, kind, created_at
		FROM users WHERE id = $1`, id)
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.get(ctx, `
		SELECT id, email, team_name, password_hash, class, enabled, kind, created_at
		FROM users WHERE lower(email) = lower($1)`, email)
}

func (s *PostgresStore) ExistsByEmailOrTeamName(ctx context.Context, email, teamName string) (bool, error) {
	var exists bool
	err := s.q(ctx).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1) OR team_name = $2)`,
		email, teamName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check duplicate user: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) get(ctx context.Context, query string, arg any) (*User, error) {
	u := &User{}
	var class int
	err := s.q(ctx).QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.TeamName, &u.PasswordHash, &class, &u.Enabled, &u.Kind, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	u.Class = Class(class)
	return u, nil
}

// isUniqueViolation reports whether the error is a Postgres unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
