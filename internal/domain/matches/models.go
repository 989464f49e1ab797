package matches

import (
	"encoding/json"
	"time"
)

// Match is a single fixture as supplied upstream. Scores are meaningful only when Played is true.
type Match struct {
	Date          time.Time `json:"matchDate"`
	Stadium       string    `json:"stadium"`
	HomeTeam      string    `json:"homeTeam"`
	AwayTeam      string    `json:"awayTeam"`
	Played        bool      `json:"matchPlayed"`
	HomeTeamScore int       `json:"homeTeamScore"`
	AwayTeamScore int       `json:"awayTeamScore"`
}

// wireMatch mirrors Match with loosely typed fields so upstream quirks never fail decoding.
type wireMatch struct {
	Date          json.RawMessage `json:"matchDate"`
	Stadium       string          `json:"stadium"`
	HomeTeam      string          `json:"homeTeam"`
	AwayTeam      string          `json:"awayTeam"`
	Played        bool            `json:"matchPlayed"`
	HomeTeamScore json.RawMessage `json:"homeTeamScore"`
	AwayTeamScore json.RawMessage `json:"awayTeamScore"`
}

// UnmarshalJSON accepts epoch-millisecond or string dates and numeric, string, null, or missing scores.
// Unusable values decode to their zero value instead of failing the whole payload.
func (m *Match) UnmarshalJSON(data []byte) error {
	var w wireMatch
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = Match{
		Date:          decodeDate(w.Date),
		Stadium:       w.Stadium,
		HomeTeam:      w.HomeTeam,
		AwayTeam:      w.AwayTeam,
		Played:        w.Played,
		HomeTeamScore: decodeScore(w.HomeTeamScore),
		AwayTeamScore: decodeScore(w.AwayTeamScore),
	}
	return nil
}

// MarshalJSON writes the date as epoch milliseconds (the upstream format) and omits it when unknown.
func (m Match) MarshalJSON() ([]byte, error) {
	var date *int64
	if !m.Date.IsZero() {
		ms := m.Date.UnixMilli()
		date = &ms
	}
	return json.Marshal(struct {
		Date          *int64 `json:"matchDate,omitempty"`
		Stadium       string `json:"stadium"`
		HomeTeam      string `json:"homeTeam"`
		AwayTeam      string `json:"awayTeam"`
		Played        bool   `json:"matchPlayed"`
		HomeTeamScore int    `json:"homeTeamScore"`
		AwayTeamScore int    `json:"awayTeamScore"`
	}{
		Date:          date,
		Stadium:       m.Stadium,
		HomeTeam:      m.HomeTeam,
		AwayTeam:      m.AwayTeam,
		Played:        m.Played,
		HomeTeamScore: m.HomeTeamScore,
		AwayTeamScore: m.AwayTeamScore,
	})
}

// ScheduleResponse is the payload returned by /matches and /schedule.
type ScheduleResponse struct {
	Count   int     `json:"count"`
	Matches []Match `json:"matches"`
}

// NewScheduleResponse builds a ScheduleResponse payload.
func NewScheduleResponse(matches []Match) ScheduleResponse {
	if matches == nil {
		matches = []Match{}
	}
	return ScheduleResponse{
		Count:   len(matches),
		Matches: matches,
	}
}
