// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
)

// NewMCPServer initializes and configures the qualifying timeline MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Qualifying Timeline Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_driver_timeline ---
	s.AddTool(mcp.NewTool("get_driver_timeline",
		mcp.WithDescription("Build the qualifying performance timeline for a single driver across all available seasons."),
		mcp.WithString("driver", mcp.Description("Broadcast name of the driver, e.g. 'M VERSTAPPEN'."), mcp.Required()),
		mcp.WithNumber("year", mcp.Description("Restrict the timeline to a single season.")),
		mcp.WithString("input_dir", mcp.Description("Directory holding the per-year qualifying CSV tables (defaults to the configured input directory).")),
	), h.handleGetDriverTimeline)

	// --- 2. Tool: get_timeline_summary ---
	s.AddTool(mcp.NewTool("get_timeline_summary",
		mcp.WithDescription("Summarize the qualifying timeline per season: entry counts, driver counts and data completeness."),
		mcp.WithString("input_dir", mcp.Description("Directory holding the per-year qualifying CSV tables (defaults to the configured input directory).")),
	), h.handleGetTimelineSummary)

	return s
}

// StartMCPServer starts the qualifying timeline MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
