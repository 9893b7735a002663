package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/core"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/ingest"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// buildTimeline runs the full ingest and aggregation pipeline for a request.
func (h *toolHandler) buildTimeline(inputDir string) ([]schema.DriverSeasonEntry, error) {
	cfg := h.baseCfg.Clone()
	if inputDir != "" {
		cfg.InputDir = inputDir
	}

	loaded, err := ingest.LoadDirectory(cfg.InputDir)
	if err != nil {
		return nil, err
	}

	return core.BuildTimeline(loaded.Records), nil
}

func (h *toolHandler) handleGetDriverTimeline(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	driver := request.GetString("driver", "")
	if driver == "" {
		return mcp.NewToolResultError("driver is required"), nil
	}
	year := request.GetInt("year", 0)

	entries, err := h.buildTimeline(request.GetString("input_dir", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timeline build failed: %v", err)), nil
	}

	var matched []schema.DriverSeasonEntry
	for _, entry := range entries {
		if entry.Driver != driver {
			continue
		}
		if year > 0 && entry.Year != year {
			continue
		}
		matched = append(matched, entry)
	}

	if len(matched) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no timeline entries found for driver %q", driver)), nil
	}

	jsonData, _ := json.MarshalIndent(matched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// seasonSummary is the per-season aggregate returned by get_timeline_summary.
type seasonSummary struct {
	Year            int     `json:"year"`
	Entries         int     `json:"entries"`
	Drivers         int     `json:"drivers"`
	AvgCompleteness float64 `json:"avgCompleteness"`
}

func (h *toolHandler) handleGetTimelineSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := h.buildTimeline(request.GetString("input_dir", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timeline build failed: %v", err)), nil
	}

	var years []int
	byYear := make(map[int][]schema.DriverSeasonEntry)
	for _, entry := range entries {
		if _, seen := byYear[entry.Year]; !seen {
			years = append(years, entry.Year)
		}
		byYear[entry.Year] = append(byYear[entry.Year], entry)
	}

	summaries := make([]seasonSummary, 0, len(years))
	for _, year := range years {
		seasonEntries := byYear[year]
		drivers := make(map[string]bool)
		var completenessSum float64
		for _, entry := range seasonEntries {
			drivers[entry.Driver] = true
			completenessSum += entry.DataCompleteness
		}
		summaries = append(summaries, seasonSummary{
			Year:            year,
			Entries:         len(seasonEntries),
			Drivers:         len(drivers),
			AvgCompleteness: completenessSum / float64(len(seasonEntries)),
		})
	}

	jsonData, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
