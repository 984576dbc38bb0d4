package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an insert collides with an existing
	// email or team name.
	ErrDuplicate = errors.New("user already exists")
)

// Store defines account persistence. Implementations must treat email and
// team name as unique.
type Store interface {
	// Create inserts the user and fills in its generated ID.
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ExistsByEmailOrTeamName reports whether any account already uses the
	// email or the team name. Registration's duplicate check needs the OR
	// semantics in a single query.
	ExistsByEmailOrTeamName(ctx context.Context, email, teamName string) (bool, error)
}
