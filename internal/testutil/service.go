package testutil

import (
	"github.com/preston-bernstein/league-standings-service/internal/app/league"
	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	"github.com/preston-bernstein/league-standings-service/internal/store"
)

// NewServiceWithMatches builds a league service backed by an in-memory store preloaded with matches.
func NewServiceWithMatches(list []matches.Match) *league.Service {
	ms := store.NewMemoryStore()
	if len(list) > 0 {
		ms.SetMatches(list)
	}
	return league.NewService(ms)
}
