package providers

import (
	"context"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
)

// MatchProvider fetches the full list of match records from an upstream source.
// Implementations return the records in upstream order and never a partial list on error.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]matches.Match, error)
}

// VersionDiscoverer is implemented by providers that can report the upstream API version.
type VersionDiscoverer interface {
	FetchAPIVersion(ctx context.Context) (string, error)
}

// Unwrapper is implemented by decorators so callers can reach the wrapped provider.
type Unwrapper interface {
	Unwrap() MatchProvider
}

// DiscoverVersion walks the decorator chain and asks the first VersionDiscoverer it finds.
func DiscoverVersion(ctx context.Context, p MatchProvider) (string, error) {
	for p != nil {
		if d, ok := p.(VersionDiscoverer); ok {
			return d.FetchAPIVersion(ctx)
		}
		u, ok := p.(Unwrapper)
		if !ok {
			break
		}
		p = u.Unwrap()
	}
	return "", ErrVersionUnsupported
}

// Close releases resources held anywhere in the decorator chain.
func Close(p MatchProvider) error {
	var firstErr error
	for p != nil {
		switch c := p.(type) {
		case interface{ Close() error }:
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		case interface{ Close() }:
			c.Close()
		}
		u, ok := p.(Unwrapper)
		if !ok {
			break
		}
		p = u.Unwrap()
	}
	return firstErr
}
