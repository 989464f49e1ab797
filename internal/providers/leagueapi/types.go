package leagueapi

import "github.com/preston-bernstein/league-standings-service/internal/domain/matches"

type accessTokenResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
}

type matchesResponse struct {
	Success bool            `json:"success"`
	Matches []matches.Match `json:"matches"`
}

type versionResponse struct {
	Success bool   `json:"success"`
	Version string `json:"version"`
}
