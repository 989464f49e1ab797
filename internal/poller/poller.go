package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
	"github.com/preston-bernstein/league-standings-service/internal/metrics"
	"github.com/preston-bernstein/league-standings-service/internal/providers"
)

const (
	defaultInterval = 30 * time.Second
	readyFailures   = 3
)

// MatchSink receives each successfully fetched match list.
type MatchSink interface {
	ReplaceMatches(list []matches.Match) []matches.Issue
}

// Poller fetches matches on an interval and hands them to the sink. A failed fetch leaves the
// sink untouched so the previous list stays in service.
type Poller struct {
	provider providers.MatchProvider
	sink     MatchSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	fetchMu  sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	APIVersion          string
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailures
}

// New constructs a Poller with sane defaults.
func New(provider providers.MatchProvider, sink MatchSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.discoverVersion(ctx)
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh runs one fetch immediately and reports its error.
func (p *Poller) Refresh(ctx context.Context) error {
	return p.fetchOnce(ctx)
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	p.fetchMu.Lock()
	defer p.fetchMu.Unlock()

	start := p.now()
	p.recordAttempt(start)
	list, err := p.provider.FetchMatches(ctx)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	issues := p.sink.ReplaceMatches(list)
	p.metrics.RecordMatchesReplaced(len(list), len(issues))
	for _, issue := range issues {
		p.logWarn("match record skipped", slog.String("issue", issue.String()))
	}

	p.recordSuccess(start)
	p.logInfo("poller refreshed matches",
		logging.FieldCount, len(list),
		logging.FieldSkipped, len(issues),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// discoverVersion asks the provider chain for the upstream API version. Failure is logged and
// leaves any previously discovered version in place.
func (p *Poller) discoverVersion(ctx context.Context) {
	version, err := providers.DiscoverVersion(ctx, p.provider)
	switch {
	case errors.Is(err, providers.ErrVersionUnsupported):
		return
	case err != nil:
		p.logWarn("api version discovery failed", "error", err)
		return
	}

	p.statusMu.Lock()
	p.status.APIVersion = version
	p.statusMu.Unlock()
	p.logInfo("api version discovered", slog.String(logging.FieldAPIVersion, version))
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logWarn(msg string, args ...any) {
	logging.Warn(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
