package user

import (
	"time"

	"github.com/google/uuid"
)

// Class is the ordinal privilege level of an account. Higher values carry
// more privilege; comparisons use >= so new levels can slot in between.
type Class int

const (
	// ClassUser is the default privilege level for registered accounts.
	ClassUser Class = 1
	// ClassModerator marks staff accounts.
	ClassModerator Class = 2
)

// String returns the human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassModerator:
		return "Moderator"
	case ClassUser:
		return "User"
	default:
		return "Unknown"
	}
}

// User is an account identity record. It is mutated only by registration;
// administrative tooling owns every other change.
type User struct {
	ID           uuid.UUID
	Email        string
	TeamName     string
	PasswordHash string
	Class        Class
	// Enabled gates login. Freshly registered accounts may start disabled
	// depending on configuration.
	Enabled bool
	// Kind is the free-form account type chosen at signup (e.g. "onsite",
	// "remote").
	Kind      string
	CreatedAt time.Time
}
