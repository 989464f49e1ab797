package server

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/league-standings-service/internal/config"
	"github.com/preston-bernstein/league-standings-service/internal/providers"
	"github.com/preston-bernstein/league-standings-service/internal/providers/fixture"
	"github.com/preston-bernstein/league-standings-service/internal/providers/leagueapi"
	"github.com/preston-bernstein/league-standings-service/internal/providers/sqlsource"
	"github.com/preston-bernstein/league-standings-service/internal/testutil"
)

func unwrapAll(p providers.MatchProvider) providers.MatchProvider {
	for {
		u, ok := p.(providers.Unwrapper)
		if !ok {
			return p
		}
		p = u.Unwrap()
	}
}

func TestProviderFactoryWrapsFixtureWithRetry(t *testing.T) {
	prov, err := newProviderFactory(nil, nil).build(context.Background(), config.Config{Provider: config.ProviderFixture})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prov.(providers.Unwrapper); !ok {
		t.Fatalf("expected retry wrapper, got %T", prov)
	}
	if _, ok := unwrapAll(prov).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture at the bottom of the chain, got %T", unwrapAll(prov))
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	prov, err := selectProvider(context.Background(), config.Config{Provider: "unknown"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prov.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback, got %T", prov)
	}
}

func TestSelectProviderChoosesRateLimitedLeagueAPI(t *testing.T) {
	prov, err := selectProvider(context.Background(), config.Config{
		Provider:  config.ProviderLeagueAPI,
		LeagueAPI: config.LeagueAPIConfig{URL: "http://example.com/api", BaseURL: "http://example.com/api/v1"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer providers.Close(prov)

	if _, ok := prov.(providers.Unwrapper); !ok {
		t.Fatalf("expected rate limiter around league api client, got %T", prov)
	}
	if _, ok := unwrapAll(prov).(*leagueapi.Client); !ok {
		t.Fatalf("expected league api client, got %T", unwrapAll(prov))
	}
}

func TestSelectProviderOpensSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "matches.db")
	prov, err := selectProvider(context.Background(), config.Config{
		Provider: config.ProviderSQLite,
		Database: config.DatabaseConfig{URL: dsn, MaxOpenConns: 1},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer providers.Close(prov)

	if _, ok := prov.(*sqlsource.Provider); !ok {
		t.Fatalf("expected sql source, got %T", prov)
	}
}

func TestSelectProviderPostgresUsesPostgresDriver(t *testing.T) {
	orig := openSQLSource
	defer func() { openSQLSource = orig }()

	var got sqlsource.Config
	openSQLSource = func(ctx context.Context, cfg sqlsource.Config) (*sqlsource.Provider, error) {
		got = cfg
		return nil, errors.New("no database here")
	}

	_, err := selectProvider(context.Background(), config.Config{
		Provider: config.ProviderPostgres,
		Database: config.DatabaseConfig{URL: "postgres://localhost/league", MaxOpenConns: 3},
	}, nil)
	if err == nil {
		t.Fatalf("expected open error to surface")
	}
	if got.Driver != sqlsource.DriverPostgres || got.DSN != "postgres://localhost/league" || got.MaxOpenConns != 3 {
		t.Fatalf("unexpected sql config %+v", got)
	}
}

func TestProviderFactoryReportsOpenFailure(t *testing.T) {
	_, err := newProviderFactory(nil, nil).build(context.Background(), config.Config{Provider: config.ProviderSQLite})
	if err == nil {
		t.Fatalf("expected error for sqlite without a DSN")
	}
}

func TestProviderLabel(t *testing.T) {
	tests := []struct {
		raw  string
		prov providers.MatchProvider
		want string
	}{
		{raw: "LeagueAPI", want: "leagueapi"},
		{raw: " sqlite ", want: "sqlite"},
		{raw: "", prov: fixture.New(), want: "fixture"},
		{raw: "", prov: testutil.EmptyProvider{}, want: "testutil"},
		{raw: "", prov: nil, want: "provider"},
	}
	for _, tt := range tests {
		if got := providerLabel(tt.raw, tt.prov); got != tt.want {
			t.Fatalf("providerLabel(%q, %T) = %q, want %q", tt.raw, tt.prov, got, tt.want)
		}
	}
}
