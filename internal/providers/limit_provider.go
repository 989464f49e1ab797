package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
)

const rateLimitedName = "rate-limited"

// rateLimitedProvider wraps a MatchProvider and enforces a minimum interval between calls.
// The first call goes through immediately.
type rateLimitedProvider struct {
	next     MatchProvider
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	nextSlot time.Time
	closed   chan struct{}
	once     sync.Once
	now      func() time.Time
}

// NewRateLimitedProvider returns a MatchProvider that spaces calls at least interval apart.
// Calls block until their slot arrives, the context ends, or the provider is closed.
func NewRateLimitedProvider(next MatchProvider, interval time.Duration, logger *slog.Logger) MatchProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		closed:   make(chan struct{}),
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	wait := p.reserve()
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled")
			return nil, ctx.Err()
		case <-p.closed:
			return nil, ErrProviderUnavailable
		case <-timer.C:
		}
	} else {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.closed:
			return nil, ErrProviderUnavailable
		default:
		}
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited provider fetch")
	return p.next.FetchMatches(ctx)
}

// reserve claims the next free slot and returns how long the caller must wait for it.
func (p *rateLimitedProvider) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	slot := p.nextSlot
	if slot.Before(now) {
		slot = now
	}
	p.nextSlot = slot.Add(p.interval)
	return slot.Sub(now)
}

// Close wakes any waiting callers; later calls fail with ErrProviderUnavailable.
func (p *rateLimitedProvider) Close() {
	p.once.Do(func() { close(p.closed) })
}

func (p *rateLimitedProvider) Unwrap() MatchProvider {
	return p.next
}
