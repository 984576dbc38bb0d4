package iplog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry // keyed by user_id|ip
}

// NewMemoryStore creates an empty in-memory IP log store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*Entry)}
}

func (s *MemoryStore) Record(_ context.Context, userID uuid.UUID, ip string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID.String() + "|" + ip
	if e, ok := s.entries[key]; ok {
		e.LastUsed = now
		e.TimesUsed++
		return nil
	}

	s.entries[key] = &Entry{
		UserID:    userID,
		IP:        ip,
		FirstUsed: now,
		LastUsed:  now,
		TimesUsed: 1,
	}
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []Entry
	for _, e := range s.entries {
		if e.UserID == userID {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastUsed.After(entries[j].LastUsed)
	})
	return entries, nil
}
