package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/core"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/ingest"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/parquet"
	"github.com/spf13/cobra"
)

// Parquet dataset filenames written by the export command.
const (
	timelineEntriesParquet = "timeline_entries.parquet"
	eventRowsParquet       = "event_rows.parquet"
)

// exportCmd exports the timeline to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the career timeline to Parquet for BI tools and analytics",
	Long: `Build the career timeline and export it as two flat Parquet datasets.

Exports:
- Timeline entries - one row per driver, season and team stint
- Event rows - one row per qualifying event per entry

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Examples:
  # Export into ./data
  f1quali export

  # Use with DuckDB for analysis
  f1quali export --output-dir out
  duckdb -c "SELECT * FROM read_parquet('out/timeline_entries.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runExport(cfg); err != nil {
			contract.LogFatal("Cannot export timeline", err)
		}
	},
}

// runExport builds the timeline and writes both Parquet datasets.
func runExport(cfg *contract.Config) error {
	loaded, err := ingest.LoadDirectory(cfg.InputDir)
	if err != nil {
		return err
	}

	entries := core.BuildTimeline(loaded.Records)

	entriesPath := filepath.Join(cfg.OutputDir, timelineEntriesParquet)
	if err := parquet.WriteTimelineEntriesParquet(parquet.ConvertTimelineEntries(entries), entriesPath); err != nil {
		return err
	}

	eventsPath := filepath.Join(cfg.OutputDir, eventRowsParquet)
	if err := parquet.WriteEventRowsParquet(parquet.ConvertEventRows(entries), eventsPath); err != nil {
		return err
	}

	fmt.Printf("💾 Exported %d timeline entries to %s and %s\n", len(entries), entriesPath, eventsPath)
	return nil
}
