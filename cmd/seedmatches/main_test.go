package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/league-standings-service/internal/config"
	"github.com/preston-bernstein/league-standings-service/internal/providers/sqlsource"
	"github.com/preston-bernstein/league-standings-service/internal/testutil"
)

const seedJSON = `[
  {"matchDate":1654000000000,"stadium":"Maracanã","homeTeam":"Brazil","awayTeam":"France","matchPlayed":true,"homeTeamScore":2,"awayTeamScore":1},
  {"stadium":"Wembley","homeTeam":"England","awayTeam":"England","matchPlayed":true,"homeTeamScore":1,"awayTeamScore":1},
  {"stadium":"Stade de France","homeTeam":"France","awayTeam":"England","matchPlayed":false}
]`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matches.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func sqliteConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Provider: config.ProviderSQLite,
		Database: config.DatabaseConfig{URL: filepath.Join(t.TempDir(), "league.db")},
	}
}

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunSeedsSQLiteSource(t *testing.T) {
	cfg := sqliteConfig(t)
	logger, buf := testutil.NewBufferLogger()

	if err := run(context.Background(), cfg, []string{writeSeed(t, seedJSON)}, logger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "home and away team are the same") {
		t.Fatalf("expected validation issue to be logged, got %s", buf.String())
	}

	src, err := sqlsource.Open(context.Background(), sqlsource.Config{Driver: sqlsource.DriverSQLite, DSN: cfg.Database.URL})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer src.Close()

	list, err := src.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(list) != 3 || list[0].HomeTeam != "Brazil" || list[2].Played {
		t.Fatalf("unexpected seeded matches %+v", list)
	}
}

func TestRunReplacesPreviousSeed(t *testing.T) {
	cfg := sqliteConfig(t)
	ctx := context.Background()

	if err := run(ctx, cfg, []string{writeSeed(t, seedJSON)}, nil); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := run(ctx, cfg, []string{writeSeed(t, `[{"homeTeam":"A","awayTeam":"B","matchPlayed":true}]`)}, nil); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	src, err := sqlsource.Open(ctx, sqlsource.Config{Driver: sqlsource.DriverSQLite, DSN: cfg.Database.URL})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer src.Close()
	list, err := src.FetchMatches(ctx)
	if err != nil || len(list) != 1 || list[0].HomeTeam != "A" {
		t.Fatalf("expected seed to replace the table, got %+v (err %v)", list, err)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	ctx := context.Background()

	if err := run(ctx, sqliteConfig(t), nil, nil); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}

	cfg := sqliteConfig(t)
	cfg.Provider = config.ProviderFixture
	if err := run(ctx, cfg, []string{writeSeed(t, seedJSON)}, nil); err == nil || !strings.Contains(err.Error(), "PROVIDER") {
		t.Fatalf("expected provider error, got %v", err)
	}

	if err := run(ctx, sqliteConfig(t), []string{writeSeed(t, `{"not":"an array"}`)}, nil); err == nil || !strings.Contains(err.Error(), "parse seed file") {
		t.Fatalf("expected parse error, got %v", err)
	}

	if err := run(ctx, sqliteConfig(t), []string{filepath.Join(t.TempDir(), "missing.json")}, nil); err == nil || !strings.Contains(err.Error(), "read seed file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestMainExitsOnSeedFailure(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "")
	t.Setenv("PROVIDER", "fixture")

	orig := exit
	defer func() { exit = orig }()
	code := -1
	exit = func(c int) { code = c }

	main()
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
