package store

import (
	"sync"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
)

// MemoryStore keeps a thread-safe copy of the match list in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	matches  []matches.Match
	revision uint64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: []matches.Match{},
	}
}

// ListMatches returns a copy of the held matches in insertion order.
func (s *MemoryStore) ListMatches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]matches.Match(nil), s.matches...)
}

// Snapshot returns a copy of the held matches together with the revision they belong to.
func (s *MemoryStore) Snapshot() ([]matches.Match, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]matches.Match(nil), s.matches...), s.revision
}

// SetMatches replaces the held list wholesale and bumps the revision.
func (s *MemoryStore) SetMatches(list []matches.Match) {
	cp := append(make([]matches.Match, 0, len(list)), list...)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = cp
	s.revision++
}
