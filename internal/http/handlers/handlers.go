package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	domain "github.com/preston-bernstein/league-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
	"github.com/preston-bernstein/league-standings-service/internal/metrics"
	"github.com/preston-bernstein/league-standings-service/internal/poller"
)

type nowFunc func() time.Time

// LeagueService is the read side of the league the HTTP handlers render.
type LeagueService interface {
	Matches() []matches.Match
	Leaderboard() []domain.TeamStanding
}

// VersionResponse is the payload returned by /version.
type VersionResponse struct {
	Service    string `json:"service"`
	APIVersion string `json:"apiVersion"`
}

// Handler wires HTTP routes to the league service.
type Handler struct {
	svc      LeagueService
	service  string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc LeagueService, service string, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		service:  service,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Leaderboard returns the ranked table in engine order.
func (h *Handler) Leaderboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	start := h.now()
	table := h.svc.Leaderboard()
	elapsed := h.now().Sub(start)
	h.metrics.RecordLeaderboard(len(table), elapsed)

	logging.Debug(logger, "served leaderboard",
		slog.Int(logging.FieldTeams, len(table)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	writeJSON(w, nethttp.StatusOK, domain.NewLeaderboardResponse(table), h.logger)
}

// Matches returns the held match list in insertion order. It also serves /schedule.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	list := h.svc.Matches()
	logging.Debug(loggerFromContext(r, h.logger), "served matches", slog.Int(logging.FieldCount, len(list)))
	writeJSON(w, nethttp.StatusOK, matches.NewScheduleResponse(list), h.logger)
}

// Version reports the service name and the upstream API version discovered by the poller.
func (h *Handler) Version(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := VersionResponse{Service: h.service}
	if h.statusFn != nil {
		resp.APIVersion = h.statusFn().APIVersion
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}
