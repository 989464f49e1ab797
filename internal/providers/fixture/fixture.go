package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
)

const day = 24 * time.Hour

// Provider returns a small static round-robin useful for local testing and bootstrapping.
// Played fixtures are dated in the past and pending ones in the future, relative to now.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchMatches returns a deterministic set of example matches.
func (p *Provider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx

	base := p.now().UTC().Truncate(day).Add(18 * time.Hour)

	return []matches.Match{
		{Date: base.Add(-10 * day), Stadium: "Maracanã", HomeTeam: "Brazil", AwayTeam: "France", Played: true, HomeTeamScore: 2, AwayTeamScore: 1},
		{Date: base.Add(-9 * day), Stadium: "Wembley", HomeTeam: "England", AwayTeam: "Spain", Played: true, HomeTeamScore: 1, AwayTeamScore: 1},
		{Date: base.Add(-3 * day), Stadium: "Maracanã", HomeTeam: "Brazil", AwayTeam: "England", Played: true, HomeTeamScore: 0, AwayTeamScore: 0},
		{Date: base.Add(-2 * day), Stadium: "Stade de France", HomeTeam: "France", AwayTeam: "Spain", Played: true, HomeTeamScore: 3, AwayTeamScore: 1},
		{Date: base.Add(4 * day), Stadium: "Santiago Bernabéu", HomeTeam: "Spain", AwayTeam: "Brazil"},
		{Date: base.Add(5 * day), Stadium: "Stade de France", HomeTeam: "France", AwayTeam: "England"},
	}, nil
}
