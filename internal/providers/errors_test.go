package providers

import (
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("fetch: %w", err))
	if !ok || rl != err {
		t.Fatalf("expected to unwrap wrapped rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}

	if _, ok := AsRateLimitError(fmt.Errorf("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}
