// Package contract holds the configuration, shared interfaces and console
// helpers used across the pipeline's packages.
package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// ConfigurationError reports a structural violation of the input contract,
// such as a missing required column. It is fatal: the run aborts with no
// partial output. Ordinary data gaps never raise it; they flow through as
// nulls.
type ConfigurationError struct {
	MissingColumns []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingColumns, ", "))
}

// RunStore records processing runs and their resulting season metrics for
// longitudinal tracking. Implementations must be safe to call with a
// disabled (none) backend, turning every method into a no-op.
type RunStore interface {
	// BeginRun registers a new run and returns its ID.
	BeginRun(startTime time.Time, configParams map[string]any) (string, error)
	// EndRun finalizes the run with its outcome.
	EndRun(runID string, endTime time.Time, result schema.RunResult) error
	// RecordEntries stores the per-entry season metrics of a run.
	RecordEntries(runID string, entries []schema.DriverSeasonEntry) error
	// GetStatus reports store-level statistics.
	GetStatus() (*RunStoreStatus, error)
	// Clear removes all tracked runs and metrics.
	Clear() error
	// Close releases the underlying connection.
	Close() error
}

// RunStoreStatus summarizes the state of the run-tracking store.
type RunStoreStatus struct {
	Backend      schema.DatabaseBackend
	Connected    bool
	TotalRuns    int
	TotalEntries int
	LastRun      *time.Time
	OldestRun    *time.Time
}
