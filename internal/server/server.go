package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-standings-service/internal/app/league"
	"github.com/preston-bernstein/league-standings-service/internal/config"
	httpserver "github.com/preston-bernstein/league-standings-service/internal/http"
	"github.com/preston-bernstein/league-standings-service/internal/http/handlers"
	"github.com/preston-bernstein/league-standings-service/internal/http/middleware"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
	"github.com/preston-bernstein/league-standings-service/internal/mcpserver"
	"github.com/preston-bernstein/league-standings-service/internal/metrics"
	"github.com/preston-bernstein/league-standings-service/internal/poller"
	"github.com/preston-bernstein/league-standings-service/internal/providers"
	"github.com/preston-bernstein/league-standings-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	league        *league.Service
	provider      providers.MatchProvider
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and poller wiring. It fails only when
// the configured match source cannot be opened.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	provider, err := newProviderFactory(logger, recorder).build(ctx, cfg)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, err
	}

	srv := assemble(cfg, logger, provider, recorder)
	srv.metricsServer = metricsSrv
	srv.metricsStop = metricsShutdown
	return srv, nil
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.MatchProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.MatchProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	srv := assemble(cfg, logger, newProviderFactory(logger, recorder).wrap(cfg, provider), recorder)
	srv.metricsServer = metricsSrv
	srv.metricsStop = metricsShutdown
	return srv
}

func assemble(cfg config.Config, logger *slog.Logger, provider providers.MatchProvider, recorder *metrics.Recorder) *Server {
	memoryStore := store.NewMemoryStore()
	leagueSvc := league.NewService(memoryStore)
	plr := poller.New(provider, leagueSvc, logger, recorder, cfg.PollInterval)

	return &Server{
		cfg:        cfg,
		logger:     logger,
		metrics:    recorder,
		store:      memoryStore,
		league:     leagueSvc,
		provider:   provider,
		httpServer: buildHTTPServer(cfg, leagueSvc, logger, recorder, plr),
		poller:     plr,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, leagueSvc *league.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		league:     leagueSvc,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, leagueSvc *league.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	serviceName := cfg.Metrics.ServiceName
	if serviceName == "" {
		serviceName = "league-standings-service"
	}

	opts := httpserver.RouterOptions{
		Logger: logger,
		MCP:    mcpserver.NewHandler(mcpserver.NewServer(leagueSvc, serviceName, cfg.Version, logger)),
	}
	if cfg.AdminToken != "" {
		var refresher handlers.Refresher
		if plr != nil {
			refresher = plr
		}
		opts.Admin = handlers.NewAdminHandler(leagueSvc, refresher, cfg.AdminToken, logger, recorder)
	}

	handler := handlers.NewHandler(leagueSvc, serviceName, logger, recorder, statusFn)
	router := httpserver.NewRouter(handler, opts)
	return newNetHTTPServer(":"+cfg.Port, middleware.LoggingMiddleware(logger, recorder, router))
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Releases the rate limiter and any database handle in the provider chain.
	if err := providers.Close(s.provider); err != nil {
		logging.Warn(s.logger, "provider close failed", "error", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// League exposes the league service (useful for tests).
func (s *Server) League() *league.Service {
	return s.league
}
