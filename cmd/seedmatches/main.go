// Command seedmatches loads a JSON array of matches into the SQL match source read by
// PROVIDER=postgres or PROVIDER=sqlite.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/league-standings-service/internal/config"
	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
	"github.com/preston-bernstein/league-standings-service/internal/providers/sqlsource"
)

var errUsage = errors.New("usage: seedmatches <matches.json>")

var exit = os.Exit

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "league-seed",
		Version: "dev",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], logger); err != nil {
		logging.Error(logger, "seeding failed", err)
		stop()
		exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, logger *slog.Logger) error {
	if len(args) != 1 {
		return errUsage
	}

	driver, err := driverFor(cfg.Provider)
	if err != nil {
		return err
	}

	list, err := readMatches(args[0])
	if err != nil {
		return err
	}
	for _, issue := range matches.Validate(list) {
		logging.Warn(logger, "match will not count towards the leaderboard", "issue", issue.String())
	}

	src, err := sqlsource.Open(ctx, sqlsource.Config{
		Driver:       driver,
		DSN:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer src.Close()

	if err := src.ReplaceAll(ctx, list); err != nil {
		return err
	}
	logging.Info(logger, "matches seeded",
		slog.String(logging.FieldProvider, driver),
		slog.Int(logging.FieldCount, len(list)),
	)
	return nil
}

func driverFor(provider string) (string, error) {
	switch provider {
	case config.ProviderPostgres:
		return sqlsource.DriverPostgres, nil
	case config.ProviderSQLite:
		return sqlsource.DriverSQLite, nil
	default:
		return "", fmt.Errorf("seeding needs PROVIDER=%s or %s, got %q", config.ProviderPostgres, config.ProviderSQLite, provider)
	}
}

func readMatches(path string) ([]matches.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var list []matches.Match
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return list, nil
}
