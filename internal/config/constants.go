package config

import "time"

const (
	envPort             = "PORT"
	envPollInterval     = "POLL_INTERVAL"
	envProvider         = "PROVIDER"
	envLeagueAPIURL     = "LEAGUE_API_URL"
	envLeagueAPIBaseURL = "LEAGUE_API_BASE_URL"
	envLeagueAPITimeout = "LEAGUE_API_TIMEOUT"
	envDatabaseURL      = "DATABASE_URL"
	envDatabaseMaxConns = "DATABASE_MAX_CONNS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken       = "ADMIN_TOKEN"
	envMockPort         = "MOCK_PORT"
	envMockConfigPath   = "MOCK_CONFIG_PATH"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"

	defaultPort             = "4000"
	defaultPollInterval     = 30 * Duration(time.Second)
	defaultProvider         = ProviderFixture
	defaultLeagueAPIURL     = "http://localhost:3001/api"
	defaultLeagueAPIBaseURL = "http://localhost:3001/api/v1"
	defaultLeagueAPITimeout = 10 * Duration(time.Second)
	defaultDatabaseMaxConns = 4
	defaultMetricsPort      = "9090"
	defaultServiceName      = "league-standings-service"
	defaultMockPort         = "3001"
	defaultMockConfigPath   = "dev-mock-server-config.json"
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderFixture   = "fixture"
	ProviderLeagueAPI = "leagueapi"
	ProviderPostgres  = "postgres"
	ProviderSQLite    = "sqlite"
)
