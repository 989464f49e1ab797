package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("leagueapi", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("leagueapi", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("leagueapi"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("leagueapi"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("leagueapi"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("leagueapi")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("leagueapi", 5*time.Second)
	rec.RecordRateLimit("leagueapi", 0)

	if got := rec.RateLimitHits("leagueapi"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("leagueapi"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksLeague(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMatchesReplaced(12, 1)
	rec.RecordMatchesReplaced(10, 0)
	rec.RecordLeaderboard(6, time.Millisecond)

	got := rec.League()
	want := LeagueSnapshot{Replacements: 2, LastMatchCount: 10, LastSkipped: 0, Leaderboards: 1, LastLeaderboardLen: 6}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordMatchesReplaced(1, 0)
	rec.RecordLeaderboard(1, time.Millisecond)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)

	if rec.ProviderCalls("x") != 0 || rec.League() != (LeagueSnapshot{}) {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("fixture", time.Millisecond, nil)
			rec.RecordLeaderboard(2, time.Millisecond)
		}()
	}
	wg.Wait()

	if got := rec.ProviderCalls("fixture"); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
	if got := rec.League().Leaderboards; got != 20 {
		t.Fatalf("expected 20 leaderboards, got %d", got)
	}
}
