package cmd

import (
	"path/filepath"
	"time"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/core"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/ingest"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/outwriter"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/runstore"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/spf13/cobra"
)

// buildCmd runs the full aggregation pipeline.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the career qualifying timeline from the collector's CSV tables.",
	Long: `Load every per-year qualifying table, normalize session times, compute
gap-to-pole and teammate gaps, and write the aggregated career timeline
as a JSON document.

A year whose table cannot be read is reported as failed and the rest of
the pipeline continues. A table missing a required column aborts the run
with no partial output.

Examples:
  # Build from ./data into ./data/career_timeline.json
  f1quali build

  # Custom locations
  f1quali build --input-dir raw --output-dir out --filename timeline.json

  # Track runs in a local SQLite database
  f1quali build --history-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runBuild(cfg); err != nil {
			contract.LogFatal("Cannot build timeline", err)
		}
	},
}

// runBuild executes ingest, aggregation, output and run tracking.
func runBuild(cfg *contract.Config) error {
	startTime := time.Now()

	store, err := runstore.NewRunStore(cfg.Backend, cfg.DBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(startTime, map[string]any{
		"input-dir":  cfg.InputDir,
		"output-dir": cfg.OutputDir,
		"filename":   cfg.OutputFile,
	})
	if err != nil {
		contract.LogWarn("Run tracking disabled for this run", err)
	}

	loaded, err := ingest.LoadDirectory(cfg.InputDir)
	if err != nil {
		return err
	}

	entries := core.BuildTimeline(loaded.Records)

	outputPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	writer := outwriter.NewOutWriter()
	if err := writer.WriteTimeline(entries, outputPath); err != nil {
		return err
	}

	result := &schema.RunResult{
		ProcessedYears: loaded.ProcessedYears,
		FailedYears:    loaded.FailedYears,
		EntryCount:     len(entries),
		OutputPath:     outputPath,
	}

	if runID != "" {
		if err := store.RecordEntries(runID, entries); err != nil {
			contract.LogWarn("Could not record run entries", err)
		}
		if err := store.EndRun(runID, time.Now(), *result); err != nil {
			contract.LogWarn("Could not finalize run record", err)
		}
	}

	return writer.PrintRunSummary(entries, result, cfg, time.Since(startTime))
}
