package logintoken

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and local development.
// Consume holds the lock across lookup and delete, giving the same
// at-most-once guarantee the Postgres store gets from DELETE..RETURNING.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]Token // keyed by token|series
}

// NewMemoryStore creates an empty in-memory login token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]Token)}
}

func key(token, series string) string {
	return token + "|" + series
}

func (s *MemoryStore) Create(_ context.Context, t *Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	s.rows[key(t.Value, t.Series)] = *t
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, token, series string) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(token, series)
	row, ok := s.rows[k]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.rows, k)
	return &row, nil
}

func (s *MemoryStore) Delete(_ context.Context, token, series string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, key(token, series))
	return nil
}

// Len reports the number of stored rows. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
