package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type leagueStats struct {
	replacements       int
	lastMatchCount     int
	lastSkipped        int
	leaderboards       int
	lastLeaderboardLen int
}

// Recorder captures lightweight, in-memory metrics about provider calls and the league table.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	league leagueStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordMatchesReplaced tracks a wholesale replacement of the held match list.
// skipped counts played records the leaderboard ignores.
func (r *Recorder) RecordMatchesReplaced(count, skipped int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.league.replacements++
	r.league.lastMatchCount = count
	r.league.lastSkipped = skipped
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMatchesReplaced(count, skipped)
	}
}

// RecordLeaderboard tracks a leaderboard request and the number of ranked teams.
func (r *Recorder) RecordLeaderboard(teams int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.league.leaderboards++
	r.league.lastLeaderboardLen = teams
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLeaderboard(teams, duration)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// LeagueSnapshot is a copy of the league counters.
type LeagueSnapshot struct {
	Replacements       int
	LastMatchCount     int
	LastSkipped        int
	Leaderboards       int
	LastLeaderboardLen int
}

func (r *Recorder) League() LeagueSnapshot {
	if r == nil {
		return LeagueSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return LeagueSnapshot{
		Replacements:       r.league.replacements,
		LastMatchCount:     r.league.lastMatchCount,
		LastSkipped:        r.league.lastSkipped,
		Leaderboards:       r.league.leaderboards,
		LastLeaderboardLen: r.league.lastLeaderboardLen,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
