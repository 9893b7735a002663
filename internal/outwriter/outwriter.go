// Package outwriter has the timeline document writer and the console
// summary output.
package outwriter

import (
	"os"
	"time"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTimeline writes the canonical timeline document to path, creating
// parent directories as needed.
func (ow *OutWriter) WriteTimeline(entries []schema.DriverSeasonEntry, path string) error {
	return writeTimelineDocument(entries, path)
}

// PrintRunSummary prints the per-year summary table and the run footer.
func (ow *OutWriter) PrintRunSummary(entries []schema.DriverSeasonEntry, result *schema.RunResult, cfg *contract.Config, duration time.Duration) error {
	return printRunSummary(os.Stdout, entries, result, cfg, duration)
}

// getTableWidth returns the usable console width for the summary table.
func getTableWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		// Conservative default for narrow terminals and CI.
		return 80
	}
	return detected
}
