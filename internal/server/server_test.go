package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/config"
	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	domain "github.com/preston-bernstein/league-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/league-standings-service/internal/http/handlers"
	"github.com/preston-bernstein/league-standings-service/internal/providers"
	"github.com/preston-bernstein/league-standings-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		PollInterval: time.Hour,
		Metrics:      config.MetricsConfig{Enabled: false, ServiceName: "league-standings-service"},
	}
}

func TestServerServesLeaderboardAfterRefresh(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, testutil.GoodProvider{Matches: testutil.SampleMatches()})

	if err := srv.poller.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}

	router := srv.Handler()
	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/leaderboard", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected logging middleware to set a request id")
	}

	var resp domain.LeaderboardResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Leaderboard) != 3 || resp.Leaderboard[0].TeamName != "Brazil" {
		t.Fatalf("unexpected leaderboard %+v", resp.Leaderboard)
	}

	rr = testutil.Serve(router, http.MethodGet, "/schedule", nil)
	var sched matches.ScheduleResponse
	testutil.DecodeJSON(t, rr, &sched)
	if sched.Count != 4 {
		t.Fatalf("expected 4 matches, got %d", sched.Count)
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, testutil.ErrProvider{Err: context.DeadlineExceeded})

	if err := srv.poller.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}

	router := srv.Handler()
	rr := testutil.Serve(router, http.MethodGet, "/leaderboard", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.LeaderboardResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Leaderboard) != 0 {
		t.Fatalf("expected empty leaderboard when provider errors, got %d rows", len(resp.Leaderboard))
	}

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestServerKeepsPreviousMatchesWhenFetchFails(t *testing.T) {
	prov := &flakyProvider{list: testutil.SampleMatches()}
	srv := newServerWithProvider(testConfig(), nil, prov)

	if err := srv.poller.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}
	prov.fail(providers.ErrProviderUnavailable)
	if err := srv.poller.Refresh(context.Background()); err == nil {
		t.Fatalf("expected second refresh to fail")
	}

	if got := len(srv.League().Leaderboard()); got != 3 {
		t.Fatalf("expected previous leaderboard to survive a failed fetch, got %d rows", got)
	}
}

func TestServerMountsAdminOnlyWithToken(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, testutil.EmptyProvider{})
	rr := testutil.Serve(srv.Handler(), http.MethodPut, "/admin/matches", strings.NewReader("[]"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	cfg := testConfig()
	cfg.AdminToken = "secret"
	srv = newServerWithProvider(cfg, nil, testutil.EmptyProvider{})

	body := `[{"homeTeam":"A","awayTeam":"B","matchPlayed":true,"homeTeamScore":2,"awayTeamScore":2}]`
	rr = testutil.ServeRequest(srv.Handler(), testutil.BearerRequest(http.MethodPut, "/admin/matches", body, "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var replaced handlers.ReplaceResponse
	testutil.DecodeJSON(t, rr, &replaced)
	if replaced.Count != 1 {
		t.Fatalf("unexpected replace response %+v", replaced)
	}
	if got := srv.League().Leaderboard(); len(got) != 2 || got[0].Points != 1 {
		t.Fatalf("unexpected leaderboard after admin replace %+v", got)
	}

	rr = testutil.ServeRequest(srv.Handler(), testutil.BearerRequest(http.MethodPost, "/admin/refresh", "", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := len(srv.League().Matches()); got != 0 {
		t.Fatalf("expected refresh from empty provider to clear matches, got %d", got)
	}
}

func TestServerServesVersionAndMCP(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, testutil.EmptyProvider{})

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/version", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var ver handlers.VersionResponse
	testutil.DecodeJSON(t, rr, &ver)
	if ver.Service != "league-standings-service" || ver.APIVersion != "" {
		t.Fatalf("unexpected version payload %+v", ver)
	}

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	rr = testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = config.ProviderFixture
	srv, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	srv.gracefulShutdown()
}

func TestNewFailsWhenMatchSourceCannotOpen(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = config.ProviderSQLite
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for sqlite without a DSN")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithMatches(nil), httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownClosesProvider(t *testing.T) {
	prov := &testutil.ClosingProvider{CloseErr: errors.New("close failed")}
	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(config.Config{}, logger, testutil.NewServiceWithMatches(nil), &testutil.StubHTTPServer{}, &testutil.StubPoller{})
	srv.provider = prov

	srv.gracefulShutdown()

	if prov.Closed != 1 {
		t.Fatalf("expected provider closed once, got %d", prov.Closed)
	}
	if !strings.Contains(buf.String(), "provider close failed") {
		t.Fatalf("expected close failure to be logged, got %s", buf.String())
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithMatches(nil), blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithMatches(nil), httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithMatches(nil), &testutil.ErrHTTPServer{}, &testutil.StubPoller{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithMatches(nil), httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}

type flakyProvider struct {
	mu   sync.Mutex
	list []matches.Match
	err  error
}

func (f *flakyProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *flakyProvider) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}
