package leagueapi

import (
	"errors"
	"fmt"
)

var (
	// ErrAccessToken is returned when the token endpoint reports failure or returns no token.
	ErrAccessToken = errors.New("leagueapi: failed to fetch access token")
	// ErrUpstreamRejected is returned when the matches or version endpoint reports failure.
	ErrUpstreamRejected = errors.New("leagueapi: upstream reported failure")
)

// StatusError describes a non-200 response from the upstream API.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("leagueapi: %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("leagueapi: %s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
