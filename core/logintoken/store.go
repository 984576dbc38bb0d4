package logintoken

import "context"

// Store persists login token rows. No two live rows may share a
// (token, series) pair; a pair may recur over time as the series rotates
// through values.
type Store interface {
	// Create inserts the token row and fills in its generated ID.
	Create(ctx context.Context, t *Token) error

	// Consume atomically finds and deletes the row matching the pair,
	// returning the deleted row. Concurrent calls racing on one pair must
	// yield exactly one winner; every other caller gets ErrNotFound.
	Consume(ctx context.Context, token, series string) (*Token, error)

	// Delete removes the row matching the pair. Deleting a missing row is
	// not an error: revocation must be idempotent.
	Delete(ctx context.Context, token, series string) error
}
