package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/config"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
	"github.com/preston-bernstein/league-standings-service/internal/providers"
	"github.com/preston-bernstein/league-standings-service/internal/providers/fixture"
	"github.com/preston-bernstein/league-standings-service/internal/providers/leagueapi"
	"github.com/preston-bernstein/league-standings-service/internal/providers/sqlsource"
)

// leagueAPISpacing keeps admin refreshes and polls from hammering the upstream token endpoint.
const leagueAPISpacing = 5 * time.Second

var openSQLSource = sqlsource.Open

func selectProvider(ctx context.Context, cfg config.Config, logger *slog.Logger) (providers.MatchProvider, error) {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New(), nil
	case config.ProviderLeagueAPI:
		client := leagueapi.NewClient(leagueapi.Config{
			APIURL:  cfg.LeagueAPI.URL,
			BaseURL: cfg.LeagueAPI.BaseURL,
			Timeout: cfg.LeagueAPI.Timeout,
			Logger:  logger,
		})
		return providers.NewRateLimitedProvider(client, leagueAPISpacing, logger), nil
	case config.ProviderPostgres, config.ProviderSQLite:
		driver := sqlsource.DriverPostgres
		if cfg.Provider == config.ProviderSQLite {
			driver = sqlsource.DriverSQLite
		}
		src, err := openSQLSource(ctx, sqlsource.Config{
			Driver:       driver,
			DSN:          cfg.Database.URL,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			Logger:       logger,
		})
		if err != nil {
			return nil, fmt.Errorf("open %s match source: %w", cfg.Provider, err)
		}
		return src, nil
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(), nil
	}
}
