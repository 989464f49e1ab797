package testutil

import (
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
)

// SampleMatch returns a played match between home and away with the given scores.
func SampleMatch(home string, homeScore int, away string, awayScore int) matches.Match {
	return matches.Match{
		Date:          time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		Stadium:       home + " Stadium",
		HomeTeam:      home,
		AwayTeam:      away,
		Played:        true,
		HomeTeamScore: homeScore,
		AwayTeamScore: awayScore,
	}
}

// SampleMatches returns a small season whose table ranks Brazil, France, England.
func SampleMatches() []matches.Match {
	return []matches.Match{
		SampleMatch("Brazil", 2, "France", 1),
		SampleMatch("France", 3, "England", 0),
		SampleMatch("England", 1, "Brazil", 1),
		{HomeTeam: "Brazil", AwayTeam: "England", Stadium: "Maracanã"},
	}
}
