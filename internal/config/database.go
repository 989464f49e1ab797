package config

// DatabaseConfig points the SQL match source at a database.
type DatabaseConfig struct {
	// URL is a Postgres connection string for PROVIDER=postgres or a file path / DSN for PROVIDER=sqlite.
	URL          string
	MaxOpenConns int
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URL:          envOrDefault(envDatabaseURL, ""),
		MaxOpenConns: intEnvOrDefault(envDatabaseMaxConns, defaultDatabaseMaxConns),
	}
}
