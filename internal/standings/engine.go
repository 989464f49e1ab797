// Package standings folds match results into a ranked league table.
package standings

import (
	"slices"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	domain "github.com/preston-bernstein/league-standings-service/internal/domain/standings"
)

// Compute builds the leaderboard for the given matches. Unplayed or unusable records are skipped.
// The result is fully ordered, positions are 1-based, and team names are unique.
func Compute(list []matches.Match) []domain.TeamStanding {
	return Rank(Accumulate(list))
}

// Accumulate folds played matches into per-team statistics keyed by team name.
func Accumulate(list []matches.Match) map[string]*domain.TeamStanding {
	table := make(map[string]*domain.TeamStanding)
	for _, m := range list {
		if !m.Countable() {
			continue
		}

		home := entry(table, m.HomeTeam)
		away := entry(table, m.AwayTeam)

		home.MatchesPlayed++
		away.MatchesPlayed++

		home.GoalsFor += m.HomeTeamScore
		home.GoalsAgainst += m.AwayTeamScore
		away.GoalsFor += m.AwayTeamScore
		away.GoalsAgainst += m.HomeTeamScore

		homePts, awayPts := outcome(m.HomeTeamScore, m.AwayTeamScore)
		home.Points += homePts
		away.Points += awayPts

		recordHeadToHead(home, m.AwayTeam, homePts, m.HomeTeamScore, m.AwayTeamScore)
		recordHeadToHead(away, m.HomeTeam, awayPts, m.AwayTeamScore, m.HomeTeamScore)
	}
	return table
}

// Rank orders the accumulated standings and assigns positions. Map iteration order never
// leaks into the result: candidates are pre-ordered by name before the stable comparator sort.
func Rank(table map[string]*domain.TeamStanding) []domain.TeamStanding {
	cmp := NewComparator()

	ranked := make([]domain.TeamStanding, 0, len(table))
	for _, s := range table {
		ranked = append(ranked, *s)
	}

	slices.SortFunc(ranked, func(a, b domain.TeamStanding) int {
		return cmp.names(a.TeamName, b.TeamName)
	})
	slices.SortStableFunc(ranked, cmp.Compare)

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

// outcome returns the league points earned by the home and away side.
func outcome(homeScore, awayScore int) (int, int) {
	switch {
	case homeScore > awayScore:
		return domain.PointsWin, domain.PointsLoss
	case awayScore > homeScore:
		return domain.PointsLoss, domain.PointsWin
	default:
		return domain.PointsDraw, domain.PointsDraw
	}
}

func entry(table map[string]*domain.TeamStanding, team string) *domain.TeamStanding {
	s, ok := table[team]
	if !ok {
		s = &domain.TeamStanding{
			TeamName:   team,
			HeadToHead: make(map[string]domain.HeadToHead),
		}
		table[team] = s
	}
	return s
}

func recordHeadToHead(s *domain.TeamStanding, opponent string, points, goalsFor, goalsAgainst int) {
	h2h := s.HeadToHead[opponent]
	h2h.Points += points
	h2h.GoalsFor += goalsFor
	h2h.GoalsAgainst += goalsAgainst
	s.HeadToHead[opponent] = h2h
}
