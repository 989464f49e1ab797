package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Matches: []matches.Match{{HomeTeam: "A"}}, Err: err}
	if _, got := p.FetchMatches(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubProviderClosesNotifyOnce(t *testing.T) {
	p := &StubProvider{Notify: make(chan struct{})}
	_, _ = p.FetchMatches(context.Background())
	_, _ = p.FetchMatches(context.Background())

	select {
	case <-p.Notify:
	default:
		t.Fatal("expected notify channel to be closed")
	}
}

func TestStubVersionProvider(t *testing.T) {
	p := &StubVersionProvider{Version: "1.2.0"}
	got, err := p.FetchAPIVersion(context.Background())
	if err != nil || got != "1.2.0" {
		t.Fatalf("unexpected version %q err %v", got, err)
	}

	p.VersionErr = errors.New("down")
	if _, err := p.FetchAPIVersion(context.Background()); err == nil {
		t.Fatal("expected version error")
	}
	if p.VersionCalls.Load() != 2 {
		t.Fatalf("expected 2 version calls, got %d", p.VersionCalls.Load())
	}
}
