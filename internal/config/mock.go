package config

// MockConfig configures the development mock responder.
type MockConfig struct {
	Port       string
	ConfigPath string
	Logging    LoggingConfig
}

// LoadMock reads mock responder settings from the environment.
func LoadMock() MockConfig {
	return MockConfig{
		Port:       envOrDefault(envMockPort, defaultMockPort),
		ConfigPath: envOrDefault(envMockConfigPath, defaultMockConfigPath),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: lowerEnvOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
