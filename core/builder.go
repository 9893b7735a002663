package core

import (
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// seasonEntryBuilder accumulates one driver-season (or one stint of it)
// event by event, then finalizes into an immutable DriverSeasonEntry.
// The accumulator never leaves this package.
type seasonEntryBuilder struct {
	year   int
	driver string
	team   string

	events        []schema.EventSummary
	positions     []float64
	gapsToPole    []float64
	teammateGaps  []float64
	completeCount int
	totalEvents   int
}

func newSeasonEntryBuilder(year int, driver, team string) *seasonEntryBuilder {
	return &seasonEntryBuilder{
		year:   year,
		driver: driver,
		team:   team,
	}
}

// AddEvent records one event summary and folds its valid values into the
// running aggregates. Only events with an actual teammate comparison count
// toward data completeness.
func (b *seasonEntryBuilder) AddEvent(ev schema.EventSummary) *seasonEntryBuilder {
	b.events = append(b.events, ev)
	b.totalEvents++

	if ev.Position != nil {
		b.positions = append(b.positions, float64(*ev.Position))
	}
	if ev.GapToPole != nil {
		b.gapsToPole = append(b.gapsToPole, *ev.GapToPole)
	}
	if ev.HasTeammateData && ev.TeammateGap != nil {
		b.teammateGaps = append(b.teammateGaps, *ev.TeammateGap)
		b.completeCount++
	}
	return b
}

// Finalize computes the aggregates and returns the finished entry.
// Averages over zero valid values stay nil; completeness over zero events
// is 0, guarding the division.
func (b *seasonEntryBuilder) Finalize() schema.DriverSeasonEntry {
	var completeness float64
	if b.totalEvents > 0 {
		completeness = float64(b.completeCount) / float64(b.totalEvents)
	}

	return schema.DriverSeasonEntry{
		Year:                  b.year,
		Driver:                b.driver,
		Team:                  b.team,
		Events:                b.events,
		AvgQualifyingPosition: schema.Mean(b.positions),
		AvgGapToPole:          schema.Mean(b.gapsToPole),
		AvgTeammateGap:        schema.Mean(b.teammateGaps),
		DataCompleteness:      completeness,
	}
}
