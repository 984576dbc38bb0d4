// Package user defines account identity records, the ordinal privilege
// class, and their persistence.
//
// Privilege is a simple ordinal: ClassUser < ClassModerator. Enforcement
// compares with >=, so checks read as "at least this class":
//
//	if sess.Class >= user.ClassModerator {
//		// staff-only path
//	}
//
// The Store interface is implemented for Postgres (pgx) and in memory for
// tests. Email and team name are unique across accounts; the combined
// email-or-team-name lookup exists for registration's duplicate check.
package user
