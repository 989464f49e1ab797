package config

// Config holds runtime configuration for the server.
type Config struct {
	// Version is stamped by the binary rather than read from the environment.
	Version      string
	Port         string
	PollInterval Duration
	Provider     string
	AdminToken   string
	LeagueAPI    LeagueAPIConfig
	Database     DatabaseConfig
	Metrics      MetricsConfig
	Logging      LoggingConfig
}

// LoggingConfig mirrors logging.Config without importing it.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     lowerEnvOrDefault(envProvider, defaultProvider),
		AdminToken:   envOrDefault(envAdminToken, ""),
		LeagueAPI:    loadLeagueAPI(),
		Database:     loadDatabase(),
		Metrics:      loadMetrics(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: lowerEnvOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
