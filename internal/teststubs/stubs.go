package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
)

// StubProvider is a test double for providers.MatchProvider.
type StubProvider struct {
	Matches []matches.Match
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchMatches returns configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Matches, s.Err
}

// StubVersionProvider adds API-version discovery to StubProvider.
type StubVersionProvider struct {
	StubProvider
	Version      string
	VersionErr   error
	VersionCalls atomic.Int32
}

// FetchAPIVersion returns the configured version and error while tracking calls.
func (s *StubVersionProvider) FetchAPIVersion(ctx context.Context) (string, error) {
	_ = ctx
	s.VersionCalls.Add(1)
	if s.VersionErr != nil {
		return "", s.VersionErr
	}
	return s.Version, nil
}
