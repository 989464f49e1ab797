package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/league-standings-service/internal/http/handlers"
)

// RouterOptions carries the optional surfaces mounted next to the public routes.
type RouterOptions struct {
	// Admin mounts /admin routes when non-nil.
	Admin *handlers.AdminHandler
	// MCP mounts the MCP streamable HTTP endpoint at /mcp when non-nil.
	MCP    nethttp.Handler
	Logger *slog.Logger
}

// NewRouter registers HTTP routes on a gorilla/mux router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = handlers.NotFound(opts.Logger)
	router.MethodNotAllowedHandler = handlers.MethodNotAllowed(opts.Logger)

	router.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	router.HandleFunc("/leaderboard", handler.Leaderboard).Methods(nethttp.MethodGet)
	router.HandleFunc("/matches", handler.Matches).Methods(nethttp.MethodGet)
	router.HandleFunc("/schedule", handler.Matches).Methods(nethttp.MethodGet)
	router.HandleFunc("/version", handler.Version).Methods(nethttp.MethodGet)

	if opts.Admin != nil {
		// Registered on the root router: a mux subrouter reports a method mismatch on one of
		// its routes as 404 when a later sibling route misses on path.
		router.HandleFunc("/admin/matches", opts.Admin.ReplaceMatches).Methods(nethttp.MethodPut)
		router.HandleFunc("/admin/refresh", opts.Admin.Refresh).Methods(nethttp.MethodPost)
	}
	if opts.MCP != nil {
		router.Handle("/mcp", opts.MCP)
	}
	return router
}
