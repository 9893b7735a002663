// Package parquet exports qualifying timeline data to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/parquet-go/parquet-go"
)

// TimelineEntry is the flattened per-driver-per-team row. A driver who
// stayed with one team all season yields a single row with no stint
// columns; a mid-season switch yields one row per stint.
type TimelineEntry struct {
	// Year is the championship season
	Year int32 `parquet:"year,snappy"`

	// Driver is the broadcast name, e.g. "M VERSTAPPEN"
	Driver string `parquet:"driver,snappy"`

	// Team is the constructor the row covers
	Team string `parquet:"team,snappy"`

	// EventCount is the number of qualifying events in the row's window
	EventCount int32 `parquet:"event_count,snappy"`

	// AvgQualifyingPosition is nil when no event carried a position
	AvgQualifyingPosition *float64 `parquet:"avg_qualifying_position,optional,snappy"`

	// AvgGapToPole is nil when no gap could be computed
	AvgGapToPole *float64 `parquet:"avg_gap_to_pole,optional,snappy"`

	// AvgTeammateGap is nil when no event had two-driver teammate data
	AvgTeammateGap *float64 `parquet:"avg_teammate_gap,optional,snappy"`

	// DataCompleteness is the fraction of events with full metric coverage
	DataCompleteness float64 `parquet:"data_completeness,snappy"`

	// StintRange labels the stint window, e.g. "Bahrain Grand Prix–Monaco Grand Prix" (nullable)
	StintRange *string `parquet:"stint_range,optional,snappy"`

	// StintStartIndex is the zero-based season index where the stint begins (nullable)
	StintStartIndex *int32 `parquet:"stint_start_index,optional,snappy"`
}

// EventRow is the flattened per-event row beneath a timeline entry.
type EventRow struct {
	// Year is the championship season
	Year int32 `parquet:"year,snappy"`

	// Driver is the broadcast name
	Driver string `parquet:"driver,snappy"`

	// Team is the constructor for the parent entry
	Team string `parquet:"team,snappy"`

	// Round is the event name, e.g. "Bahrain Grand Prix"
	Round string `parquet:"round,snappy"`

	// Position is the finishing qualifying position (nullable)
	Position *int32 `parquet:"position,optional,snappy"`

	// GapToPole is seconds behind pole, exactly 0 for the pole sitter (nullable)
	GapToPole *float64 `parquet:"gap_to_pole,optional,snappy"`

	// TeammateGap is seconds relative to the sole teammate (nullable)
	TeammateGap *float64 `parquet:"teammate_gap,optional,snappy"`

	// HasTeammateData reports whether a two-driver comparison existed
	HasTeammateData bool `parquet:"has_teammate_data,snappy"`
}

// WriteTimelineEntriesParquet writes timeline entry rows to a Parquet file.
func WriteTimelineEntriesParquet(data []TimelineEntry, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the TimelineEntry struct tags
	writer := parquet.NewGenericWriter[TimelineEntry](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteEventRowsParquet writes per-event rows to a Parquet file.
func WriteEventRowsParquet(data []EventRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the EventRow struct tags
	writer := parquet.NewGenericWriter[EventRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertTimelineEntries flattens timeline records for Parquet export.
func ConvertTimelineEntries(entries []schema.DriverSeasonEntry) []TimelineEntry {
	result := make([]TimelineEntry, len(entries))
	for i, entry := range entries {
		row := TimelineEntry{
			Year:                  int32(entry.Year),
			Driver:                entry.Driver,
			Team:                  entry.Team,
			EventCount:            int32(len(entry.Events)),
			AvgQualifyingPosition: entry.AvgQualifyingPosition,
			AvgGapToPole:          entry.AvgGapToPole,
			AvgTeammateGap:        entry.AvgTeammateGap,
			DataCompleteness:      entry.DataCompleteness,
		}
		if stint := entry.TeamStintInfo; stint != nil {
			rangeLabel := stint.EventRange
			startIndex := int32(stint.StartIndex)
			row.StintRange = &rangeLabel
			row.StintStartIndex = &startIndex
		}
		result[i] = row
	}
	return result
}

// ConvertEventRows flattens every event beneath every timeline entry.
func ConvertEventRows(entries []schema.DriverSeasonEntry) []EventRow {
	var result []EventRow
	for _, entry := range entries {
		for _, event := range entry.Events {
			row := EventRow{
				Year:            int32(entry.Year),
				Driver:          entry.Driver,
				Team:            entry.Team,
				Round:           event.Round,
				GapToPole:       event.GapToPole,
				TeammateGap:     event.TeammateGap,
				HasTeammateData: event.HasTeammateData,
			}
			if event.Position != nil {
				pos := int32(*event.Position)
				row.Position = &pos
			}
			result = append(result, row)
		}
	}
	return result
}
