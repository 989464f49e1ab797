package standings

// Points awarded per match outcome.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// HeadToHead accumulates what a team earned against one specific opponent.
type HeadToHead struct {
	Points       int `json:"points"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

// TeamStanding is one row of the leaderboard.
type TeamStanding struct {
	Position      int    `json:"position"`
	TeamName      string `json:"teamName"`
	MatchesPlayed int    `json:"matchesPlayed"`
	GoalsFor      int    `json:"goalsFor"`
	GoalsAgainst  int    `json:"goalsAgainst"`
	Points        int    `json:"points"`

	// HeadToHead is keyed by opponent team name.
	HeadToHead map[string]HeadToHead `json:"-"`
}

// GoalDifference returns goals scored minus goals conceded.
func (s TeamStanding) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// PointsAgainst returns the head-to-head points earned against opponent, zero if they never met.
func (s TeamStanding) PointsAgainst(opponent string) int {
	return s.HeadToHead[opponent].Points
}

// Row is the wire form of a TeamStanding.
type Row struct {
	Position       int    `json:"position"`
	TeamName       string `json:"teamName"`
	MatchesPlayed  int    `json:"matchesPlayed"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// LeaderboardResponse is the payload returned by /leaderboard.
type LeaderboardResponse struct {
	Leaderboard []Row `json:"leaderboard"`
}

// NewLeaderboardResponse converts ordered standings into the response payload without reordering them.
func NewLeaderboardResponse(table []TeamStanding) LeaderboardResponse {
	rows := make([]Row, 0, len(table))
	for _, s := range table {
		rows = append(rows, Row{
			Position:       s.Position,
			TeamName:       s.TeamName,
			MatchesPlayed:  s.MatchesPlayed,
			GoalsFor:       s.GoalsFor,
			GoalsAgainst:   s.GoalsAgainst,
			GoalDifference: s.GoalDifference(),
			Points:         s.Points,
		})
	}
	return LeaderboardResponse{Leaderboard: rows}
}
