package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	"github.com/preston-bernstein/league-standings-service/internal/http/requestutil"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
	"github.com/preston-bernstein/league-standings-service/internal/metrics"
)

const maxAdminBody = 8 << 20

// MatchReplacer swaps the held match list.
type MatchReplacer interface {
	ReplaceMatches(list []matches.Match) []matches.Issue
}

// Refresher triggers an immediate upstream fetch.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ReplaceResponse is the payload returned by PUT /admin/matches.
type ReplaceResponse struct {
	Count   int      `json:"count"`
	Skipped int      `json:"skipped"`
	Issues  []string `json:"issues"`
}

// AdminHandler exposes admin-only endpoints guarded by a bearer token.
type AdminHandler struct {
	svc       MatchReplacer
	refresher Refresher
	token     string
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewAdminHandler constructs an AdminHandler. A nil refresher disables POST /admin/refresh.
func NewAdminHandler(svc MatchReplacer, refresher Refresher, token string, logger *slog.Logger, recorder *metrics.Recorder) *AdminHandler {
	return &AdminHandler{
		svc:       svc,
		refresher: refresher,
		token:     token,
		logger:    logger,
		metrics:   recorder,
	}
}

// ReplaceMatches replaces the held list with the JSON array in the request body.
func (h *AdminHandler) ReplaceMatches(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var list []matches.Match
	body := http.MaxBytesReader(w, r.Body, maxAdminBody)
	if err := json.NewDecoder(body).Decode(&list); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large", logger)
			return
		}
		logging.Warn(logger, "admin replace invalid body", slog.Any("err", err))
		writeError(w, r, http.StatusBadRequest, "body must be a JSON array of matches", logger)
		return
	}

	issues := h.svc.ReplaceMatches(list)
	h.metrics.RecordMatchesReplaced(len(list), len(issues))

	resp := ReplaceResponse{Count: len(list), Skipped: len(issues), Issues: make([]string, 0, len(issues))}
	for _, issue := range issues {
		resp.Issues = append(resp.Issues, issue.String())
	}
	logging.Info(logger, "admin replaced matches",
		slog.Int(logging.FieldCount, resp.Count),
		slog.Int(logging.FieldSkipped, resp.Skipped),
	)
	writeJSON(w, http.StatusOK, resp, logger)
}

// Refresh runs one upstream fetch now instead of waiting for the next poll.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", logger)
		return
	}
	if err := h.refresher.Refresh(r.Context()); err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "refresh failed", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if h.token != "" {
		got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if ok && subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1 {
			return true
		}
	}
	logging.Warn(h.logger, "admin unauthorized",
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
	writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
	return false
}
