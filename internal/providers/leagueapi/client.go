package leagueapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
)

// Config controls how the client reaches the upstream league API.
type Config struct {
	// APIURL serves /version.
	APIURL string
	// BaseURL serves /getAccessToken and /getAllMatches.
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches match records with the two-step token flow and discovers the API version.
type Client struct {
	apiURL     string
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time

	mu         sync.RWMutex
	apiVersion string
}

// NewClient constructs a league API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		apiURL:     normalizeURL(cfg.APIURL, defaultAPIURL),
		baseURL:    normalizeURL(cfg.BaseURL, defaultBaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchMatches obtains a fresh access token and then retrieves every match.
func (c *Client) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var payload matchesResponse
	if err := c.getJSON(ctx, c.baseURL+pathAllMatches, token, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamRejected, pathAllMatches)
	}
	if payload.Matches == nil {
		payload.Matches = []matches.Match{}
	}

	logging.Debug(logging.FromContext(ctx, c.logger), "league api matches fetched",
		slog.String(logging.FieldProvider, providerName),
		slog.Int(logging.FieldCount, len(payload.Matches)),
	)
	return payload.Matches, nil
}

func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	var payload accessTokenResponse
	if err := c.getJSON(ctx, c.baseURL+pathAccessToken, "", &payload); err != nil {
		return "", err
	}
	token := strings.TrimSpace(payload.AccessToken)
	if !payload.Success || token == "" {
		return "", ErrAccessToken
	}
	return token, nil
}

// FetchAPIVersion asks the upstream for its version and remembers it. A failed lookup leaves
// the previously discovered version in place.
func (c *Client) FetchAPIVersion(ctx context.Context) (string, error) {
	var payload versionResponse
	if err := c.getJSON(ctx, c.apiURL+pathVersion, "", &payload); err != nil {
		return "", err
	}
	version := strings.TrimSpace(payload.Version)
	if !payload.Success || version == "" {
		return "", fmt.Errorf("%w: %s", ErrUpstreamRejected, pathVersion)
	}

	c.mu.Lock()
	c.apiVersion = version
	c.mu.Unlock()
	return version, nil
}

// APIVersion returns the last discovered version, or "" before discovery succeeds.
func (c *Client) APIVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiVersion
}
