// Package mockapi serves canned upstream responses for local development.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/league-standings-service/internal/http/middleware"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
)

const corsMaxAge = 3600

// Loader produces the endpoint table.
type Loader func() (*Config, error)

// Responder answers every request from a config table loaded on first use. A failed load is
// retried on the next request.
type Responder struct {
	load   Loader
	logger *slog.Logger

	mu  sync.Mutex
	cfg *Config

	router chi.Router
}

// NewResponder builds a Responder around load.
func NewResponder(load Loader, logger *slog.Logger) *Responder {
	r := &Responder{load: load, logger: logger}

	router := chi.NewRouter()
	router.Use(chimw.Recoverer)
	router.Use(chimw.RealIP)
	router.Use(middleware.Middleware(logger, nil))
	router.HandleFunc("/*", r.serve)
	r.router = router
	return r
}

// NewFileResponder builds a Responder reading its table from path.
func NewFileResponder(path string, logger *slog.Logger) *Responder {
	return NewResponder(func() (*Config, error) { return LoadFile(path) }, logger)
}

// ServeHTTP implements http.Handler.
func (r *Responder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Responder) config() (*Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg != nil {
		return r.cfg, nil
	}
	cfg, err := r.load()
	if err != nil {
		return nil, err
	}
	r.cfg = cfg
	return cfg, nil
}

func (r *Responder) serve(w http.ResponseWriter, req *http.Request) {
	logger := logging.FromContext(req.Context(), r.logger)

	cfg, err := r.config()
	if err != nil {
		logging.Error(logger, "mock config unavailable", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal Server Error",
			"message": err.Error(),
		}, logger)
		return
	}

	ep, ok := cfg.find(req.URL.Path, req.Method)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"}, logger)
		return
	}

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "OPTIONS, "+ep.Method)
	h.Set("Access-Control-Allow-Headers", "*")
	h.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))

	if req.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if auth := ep.Authorization; auth != nil && req.Header.Get("Authorization") != "Bearer "+auth.Token {
		status := auth.Status
		if status == 0 {
			status = http.StatusUnauthorized
		}
		writeRaw(w, status, auth.Unauthorized)
		return
	}

	writeRaw(w, http.StatusOK, ep.Response)
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if len(body) > 0 {
		_, _ = w.Write(body)
	}
}
