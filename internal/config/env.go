package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

var boolWords = map[string]bool{
	"1": true, "true": true, "yes": true, "on": true,
	"0": false, "false": false, "no": false, "off": false,
}

// envOrDefault returns the trimmed value of key, or defaultValue when it is unset or blank.
func envOrDefault(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

// lowerEnvOrDefault is envOrDefault for case-insensitive selectors such as PROVIDER.
func lowerEnvOrDefault(key, defaultValue string) string {
	return strings.ToLower(envOrDefault(key, defaultValue))
}

// urlEnvOrDefault drops trailing slashes so callers can append "/path" safely.
func urlEnvOrDefault(key, defaultValue string) string {
	if val := strings.TrimRight(envOrDefault(key, ""), "/"); val != "" {
		return val
	}
	return strings.TrimRight(defaultValue, "/")
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := envOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intEnvOrDefault(key string, defaultValue int) int {
	val, err := strconv.Atoi(envOrDefault(key, ""))
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	if val, ok := boolWords[lowerEnvOrDefault(key, "")]; ok {
		return val
	}
	return defaultValue
}
