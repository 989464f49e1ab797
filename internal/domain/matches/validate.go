package matches

import (
	"fmt"
	"strings"
)

// Issue describes a record that the standings engine will ignore.
type Issue struct {
	Index  int
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("match %d: %s", i.Index, i.Reason)
}

// Countable reports whether a record contributes to standings: it must be played
// and name two distinct, non-empty teams.
func (m Match) Countable() bool {
	if !m.Played {
		return false
	}
	home := strings.TrimSpace(m.HomeTeam)
	away := strings.TrimSpace(m.AwayTeam)
	return home != "" && away != "" && m.HomeTeam != m.AwayTeam
}

// Validate lists played records the engine skips. Unplayed records are never reported.
func Validate(list []Match) []Issue {
	var issues []Issue
	for i, m := range list {
		if !m.Played || m.Countable() {
			continue
		}
		reason := "home and away team are the same"
		if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
			reason = "missing team identifier"
		}
		issues = append(issues, Issue{Index: i, Reason: reason})
	}
	return issues
}
