package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonEntries() []schema.DriverSeasonEntry {
	return []schema.DriverSeasonEntry{
		{
			Year:   2022,
			Driver: "M VERSTAPPEN",
			Team:   "Red Bull Racing",
			Events: []schema.EventSummary{
				{Round: "Bahrain Grand Prix", Position: schema.IntPtr(1), GapToPole: schema.Float64Ptr(0)},
			},
			AvgQualifyingPosition: schema.Float64Ptr(1),
			AvgGapToPole:          schema.Float64Ptr(0),
			DataCompleteness:      0,
		},
		{
			Year:   2022,
			Driver: "O PIASTRI",
			Team:   "McLaren",
			Events: []schema.EventSummary{
				{Round: "Bahrain Grand Prix", Position: schema.IntPtr(8)},
			},
			DataCompleteness: 0,
			TeamStintInfo: &schema.TeamStintInfo{
				EventRange: "Bahrain Grand Prix",
				StartEvent: "Bahrain Grand Prix",
				EndEvent:   "Bahrain Grand Prix",
				StartIndex: 3,
			},
		},
	}
}

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return an empty ID for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"input-dir": "data"})
	assert.NoError(t, err)
	assert.Empty(t, runID)

	// Other operations should not error
	assert.NoError(t, store.EndRun("", time.Now(), schema.RunResult{}))
	assert.NoError(t, store.RecordEntries("", seasonEntries()))
	assert.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestRunStore_SQLite(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	startTime := time.Now()
	runID, err := store.BeginRun(startTime, map[string]any{
		"input-dir":  "data",
		"output-dir": "data",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	require.NoError(t, store.RecordEntries(runID, seasonEntries()))

	result := schema.RunResult{
		ProcessedYears: []int{2022},
		FailedYears:    []int{2021},
		EntryCount:     2,
		OutputPath:     "data/career_timeline.json",
	}
	require.NoError(t, store.EndRun(runID, startTime.Add(time.Second), result))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, 2, status.TotalEntries)
	require.NotNil(t, status.LastRun)
	require.NotNil(t, status.OldestRun)
}

func TestRunStore_MultipleRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	first, err := store.BeginRun(time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	second, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "run IDs must be unique")

	require.NoError(t, store.RecordEntries(first, seasonEntries()))
	require.NoError(t, store.RecordEntries(second, seasonEntries()))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, 4, status.TotalEntries)
	require.NotNil(t, status.LastRun)
	require.NotNil(t, status.OldestRun)
	assert.True(t, status.OldestRun.Before(*status.LastRun) || status.OldestRun.Equal(*status.LastRun))
}

func TestRunStore_Clear(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordEntries(runID, seasonEntries()))

	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalRuns)
	assert.Equal(t, 0, status.TotalEntries)
}

func TestRunStore_UnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestFormatYearList(t *testing.T) {
	assert.Equal(t, "", formatYearList(nil))
	assert.Equal(t, "2022", formatYearList([]int{2022}))
	assert.Equal(t, "2021,2022,2023", formatYearList([]int{2021, 2022, 2023}))
}
