// Package mcpserver exposes the league read model as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	domain "github.com/preston-bernstein/league-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
)

const (
	ToolLeaderboard = "get_leaderboard"
	ToolMatches     = "get_matches"
)

// LeagueService is the read side of the league the tools render.
type LeagueService interface {
	Matches() []matches.Match
	Leaderboard() []domain.TeamStanding
}

// EmptyArgs is the input schema of tools that take no arguments.
type EmptyArgs struct{}

// MatchesArgs is the input schema of get_matches.
type MatchesArgs struct {
	Team string `json:"team,omitempty" jsonschema:"Only return matches involving this team (optional)"`
}

// NewServer registers the league tools on a new MCP server.
func NewServer(svc LeagueService, name, version string, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolLeaderboard,
		Description: "Ranked league table: points, head-to-head points, goal difference, goals for, then team name",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		table := svc.Leaderboard()
		logging.Debug(logging.FromContext(ctx, logger), "mcp leaderboard", slog.Int(logging.FieldTeams, len(table)))
		return toolJSON(domain.NewLeaderboardResponse(table))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolMatches,
		Description: "Held match records in insertion order, optionally filtered by team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args MatchesArgs) (*mcp.CallToolResult, any, error) {
		list := svc.Matches()
		if team := strings.TrimSpace(args.Team); team != "" {
			list = filterTeam(list, team)
		}
		logging.Debug(logging.FromContext(ctx, logger), "mcp matches", slog.Int(logging.FieldCount, len(list)))
		return toolJSON(matches.NewScheduleResponse(list))
	})

	return server
}

// NewHandler serves the MCP server over streamable HTTP with plain JSON responses.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func filterTeam(list []matches.Match, team string) []matches.Match {
	out := make([]matches.Match, 0, len(list))
	for _, m := range list {
		if strings.EqualFold(m.HomeTeam, team) || strings.EqualFold(m.AwayTeam, team) {
			out = append(out, m)
		}
	}
	return out
}

func toolJSON(payload any) (*mcp.CallToolResult, any, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)}},
	}
}
