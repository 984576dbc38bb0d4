package iplog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one row of the per-user IP usage log. Every successful login and
// signup records the originating address; repeated use of the same address
// bumps the counter instead of adding rows.
type Entry struct {
	UserID    uuid.UUID
	IP        string
	FirstUsed time.Time
	LastUsed  time.Time
	TimesUsed int
}

// Store persists the IP usage log.
type Store interface {
	// Record notes that the user acted from the given IP at the given time.
	// First sighting inserts a row; later sightings update last_used and
	// increment times_used.
	Record(ctx context.Context, userID uuid.UUID, ip string, now time.Time) error
	// ListByUser returns the known addresses for a user, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Entry, error)
}
