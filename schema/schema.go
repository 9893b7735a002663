// Package schema has the data model, constants and helpers shared by all
// parts of the qualifying timeline pipeline.
package schema

// QualifyingRecord is one row of the collector's per-year tables: one driver
// at one qualifying session. The raw Q1-Q3 fields are duration-formatted
// strings as written by the collector; the seconds fields are derived during
// ingest and are nil when the segment time is absent or unparsable, which
// in a knockout format means the driver was eliminated earlier.
type QualifyingRecord struct {
	DriverNumber  string   // Racing number of the car
	BroadcastName string   // Driver name as shown on the TV graphics; the driver key
	TeamName      string   // Team the driver ran for at this event
	Position      *int     // Final classified position, nil if not classified
	Q1            string   // Raw Q1 duration string, empty if none
	Q2            string   // Raw Q2 duration string, empty if none
	Q3            string   // Raw Q3 duration string, empty if none
	Year          int      // Season year
	EventName     string   // Round label, e.g. "Monaco Grand Prix"
	WetSession    bool     // True when the session was predominantly wet
	Q1Seconds     *float64 // Q1 converted to seconds
	Q2Seconds     *float64 // Q2 converted to seconds
	Q3Seconds     *float64 // Q3 converted to seconds
}

// EventSummary is one event inside a driver's season timeline. All metric
// fields are nil for events the driver did not take part in; only the round
// label is populated in that case.
type EventSummary struct {
	Round           string   `json:"round"`
	Position        *int     `json:"position"`
	GapToPole       *float64 `json:"gapToPole"`
	TeammateGap     *float64 `json:"teammateGap"`
	HasTeammateData bool     `json:"hasTeammateData"`
}

// TeamStintInfo carries the metadata of one contiguous team-affiliation run
// within a season. StartIndex is the position of the stint's first event in
// the full season ordering; the visualization layer uses it to draw the
// team-change discontinuity marker.
type TeamStintInfo struct {
	EventRange string `json:"eventRange"`
	StartEvent string `json:"start_event"`
	EndEvent   string `json:"end_event"`
	StartIndex int    `json:"startIndex"`
}

// DriverSeasonEntry is one record of the canonical timeline: one driver in
// one season, or one stint of it when the driver changed teams mid-season.
// Averages are nil (never zero) when no valid values contributed. The entry
// is immutable once finalized by the builder.
type DriverSeasonEntry struct {
	Year                  int            `json:"year"`
	Driver                string         `json:"driver"`
	Team                  string         `json:"team"`
	Events                []EventSummary `json:"events"`
	AvgQualifyingPosition *float64       `json:"avgQualifyingPosition"`
	AvgGapToPole          *float64       `json:"avgGapToPole"`
	AvgTeammateGap        *float64       `json:"avgTeammateGap"`
	DataCompleteness      float64        `json:"dataCompleteness"`
	TeamStintInfo         *TeamStintInfo `json:"teamStintInfo,omitempty"`
}

// DriverStintEntry is a DriverSeasonEntry scoped to a single contiguous
// team-affiliation run. Its TeamStintInfo is always populated.
type DriverStintEntry = DriverSeasonEntry

// RunResult summarizes one processing run for the console summary and the
// run-tracking store.
type RunResult struct {
	ProcessedYears []int  // Years that produced timeline entries
	FailedYears    []int  // Years whose tables could not be read
	EntryCount     int    // Number of timeline records written
	OutputPath     string // Path of the written timeline document
}
