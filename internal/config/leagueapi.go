package config

// LeagueAPIConfig controls how we talk to the upstream league API.
type LeagueAPIConfig struct {
	// URL is the API root that serves /version.
	URL string
	// BaseURL is the versioned root that serves /getAccessToken and /getAllMatches.
	BaseURL string
	Timeout Duration
}

func loadLeagueAPI() LeagueAPIConfig {
	return LeagueAPIConfig{
		URL:     urlEnvOrDefault(envLeagueAPIURL, defaultLeagueAPIURL),
		BaseURL: urlEnvOrDefault(envLeagueAPIBaseURL, defaultLeagueAPIBaseURL),
		Timeout: durationEnvOrDefault(envLeagueAPITimeout, defaultLeagueAPITimeout),
	}
}
