package leagueapi

import "time"

const (
	providerName = "leagueapi"

	defaultAPIURL      = "http://localhost:3001/api"
	defaultBaseURL     = "http://localhost:3001/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512

	pathAccessToken = "/getAccessToken"
	pathAllMatches  = "/getAllMatches"
	pathVersion     = "/version"
)
