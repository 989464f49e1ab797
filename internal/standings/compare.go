package standings

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domain "github.com/preston-bernstein/league-standings-service/internal/domain/standings"
)

// Comparator orders standings: points, head-to-head points between the two teams,
// goal difference, goals scored, then team name. A Comparator is not safe for concurrent use.
type Comparator struct {
	collator *collate.Collator
}

// NewComparator returns a Comparator using English collation for the name tie-break.
func NewComparator() *Comparator {
	return &Comparator{collator: collate.New(language.English)}
}

// Compare returns a negative number when a ranks above b and a positive number when b ranks above a.
// Distinct team names never compare equal.
func (c *Comparator) Compare(a, b domain.TeamStanding) int {
	if a.Points != b.Points {
		return cmp.Compare(b.Points, a.Points)
	}
	if aH2H, bH2H := a.PointsAgainst(b.TeamName), b.PointsAgainst(a.TeamName); aH2H != bH2H {
		return cmp.Compare(bH2H, aH2H)
	}
	if aGD, bGD := a.GoalDifference(), b.GoalDifference(); aGD != bGD {
		return cmp.Compare(bGD, aGD)
	}
	if a.GoalsFor != b.GoalsFor {
		return cmp.Compare(b.GoalsFor, a.GoalsFor)
	}
	return c.names(a.TeamName, b.TeamName)
}

// names compares with the collator first; byte order breaks collation ties between distinct names.
func (c *Comparator) names(a, b string) int {
	if r := c.collator.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}
