package main

import (
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestMainExitsWhenMatchSourceCannotOpen(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "")
	t.Setenv("PROVIDER", "sqlite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("METRICS_ENABLED", "false")

	orig := exit
	defer func() { exit = orig }()
	code := -1
	exit = func(c int) { code = c }

	main()
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
