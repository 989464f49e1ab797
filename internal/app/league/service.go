package league

import (
	"sync"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	domain "github.com/preston-bernstein/league-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/league-standings-service/internal/standings"
)

// Store defines the contract for holding the current match list.
type Store interface {
	ListMatches() []matches.Match
	Snapshot() ([]matches.Match, uint64)
	SetMatches(list []matches.Match)
}

// Service coordinates match data and the leaderboard derived from it.
type Service struct {
	store Store

	mu       sync.Mutex
	cached   []domain.TeamStanding
	cachedAt uint64
	hasCache bool
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Matches returns the held matches in insertion order.
func (s *Service) Matches() []matches.Match {
	return s.store.ListMatches()
}

// ReplaceMatches swaps the held list for a new one. The returned issues describe played
// records the leaderboard will ignore; they never block the replacement.
func (s *Service) ReplaceMatches(list []matches.Match) []matches.Issue {
	s.store.SetMatches(list)
	return matches.Validate(list)
}

// Leaderboard computes the ranked table from the held matches. Results are reused until the
// match list changes. The head-to-head maps are shared between callers and must not be modified.
func (s *Service) Leaderboard() []domain.TeamStanding {
	list, rev := s.store.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCache || s.cachedAt != rev {
		s.cached = standings.Compute(list)
		s.cachedAt = rev
		s.hasCache = true
	}
	return append([]domain.TeamStanding(nil), s.cached...)
}
