package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/league-standings-service/internal/config"
	"github.com/preston-bernstein/league-standings-service/internal/metrics"
	"github.com/preston-bernstein/league-standings-service/internal/providers"
)

// providerFactory assembles the configured provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(ctx context.Context, cfg config.Config) (providers.MatchProvider, error) {
	base, err := selectProvider(ctx, cfg, f.logger)
	if err != nil {
		return nil, err
	}
	return f.wrap(cfg, base), nil
}

func (f providerFactory) wrap(cfg config.Config, base providers.MatchProvider) providers.MatchProvider {
	return providers.NewRetryingProvider(base, f.logger, f.metrics, providerLabel(cfg.Provider, base), 0, 0)
}

// providerLabel names the provider in metrics and logs: the configured name when set,
// otherwise the package of the concrete type ("fixture" for *fixture.Provider).
func providerLabel(raw string, provider providers.MatchProvider) string {
	if raw = strings.ToLower(strings.TrimSpace(raw)); raw != "" {
		return raw
	}
	if provider == nil {
		return "provider"
	}
	pkg, _, _ := strings.Cut(strings.TrimPrefix(fmt.Sprintf("%T", provider), "*"), ".")
	return pkg
}
