// Package core implements the qualifying-timeline aggregation engine: it
// turns the collector's raw per-session tables into the canonical
// per-driver, per-season timeline with derived performance metrics, split
// into team stints when a driver moved mid-season.
package core

import (
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// seasonTable is the per-season working view of the raw table. Event and
// driver order is first-encounter order, captured explicitly the first time
// each key is seen; nothing downstream may re-sort by value.
type seasonTable struct {
	year       int
	events     []string
	byEvent    map[string][]schema.QualifyingRecord
	poleTimes  map[string]*float64
	drivers    []string
	driverTeam map[string]string
}

func newSeasonTable(year int, records []schema.QualifyingRecord) *seasonTable {
	t := &seasonTable{
		year:       year,
		byEvent:    make(map[string][]schema.QualifyingRecord),
		poleTimes:  make(map[string]*float64),
		drivers:    nil,
		driverTeam: make(map[string]string),
	}

	for _, rec := range records {
		if _, seen := t.byEvent[rec.EventName]; !seen {
			t.events = append(t.events, rec.EventName)
		}
		t.byEvent[rec.EventName] = append(t.byEvent[rec.EventName], rec)

		if _, seen := t.driverTeam[rec.BroadcastName]; !seen {
			t.drivers = append(t.drivers, rec.BroadcastName)
			t.driverTeam[rec.BroadcastName] = rec.TeamName
		}
	}

	for _, event := range t.events {
		t.poleTimes[event] = PoleTime(t.byEvent[event])
	}

	return t
}

// driverRecord returns the driver's row at the given event, if any.
func (t *seasonTable) driverRecord(event, driver string) (schema.QualifyingRecord, bool) {
	for _, rec := range t.byEvent[event] {
		if rec.BroadcastName == driver {
			return rec, true
		}
	}
	return schema.QualifyingRecord{}, false
}

// teamRecords returns the event's rows belonging to the given team.
func (t *seasonTable) teamRecords(event, team string) []schema.QualifyingRecord {
	var recs []schema.QualifyingRecord
	for _, rec := range t.byEvent[event] {
		if rec.TeamName == team {
			recs = append(recs, rec)
		}
	}
	return recs
}

// buildEntry assembles one driver entry over the event window
// [start, end], computing teammate gaps against the given team. The season
// pass uses the full window and the driver's first-seen team; the stint
// pass narrows both.
func (t *seasonTable) buildEntry(driver, team string, start, end int) schema.DriverSeasonEntry {
	b := newSeasonEntryBuilder(t.year, driver, team)

	for i := start; i <= end; i++ {
		event := t.events[i]
		rec, ok := t.driverRecord(event, driver)
		if !ok {
			// Did not participate: only the round label is populated.
			b.AddEvent(schema.EventSummary{Round: event})
			continue
		}

		gaps := TeammateGaps(t.teamRecords(event, team))
		teammateGap := gaps[driver]

		b.AddEvent(schema.EventSummary{
			Round:           event,
			Position:        rec.Position,
			GapToPole:       GapToPole(rec.Position, BestTime(rec), t.poleTimes[event]),
			TeammateGap:     teammateGap,
			HasTeammateData: teammateGap != nil,
		})
	}

	return b.Finalize()
}

// BuildTimeline produces the canonical timeline for the combined table.
// Seasons are processed one at a time in first-encounter order and their
// intermediate views are dropped as soon as the season's entries are
// finalized, bounding peak memory across many seasons. The result is never
// mutated after construction.
func BuildTimeline(records []schema.QualifyingRecord) []schema.DriverSeasonEntry {
	var years []int
	byYear := make(map[int][]schema.QualifyingRecord)
	for _, rec := range records {
		if _, seen := byYear[rec.Year]; !seen {
			years = append(years, rec.Year)
		}
		byYear[rec.Year] = append(byYear[rec.Year], rec)
	}

	var timeline []schema.DriverSeasonEntry
	for _, year := range years {
		timeline = append(timeline, buildSeason(year, byYear[year])...)
		delete(byYear, year)
	}
	return timeline
}

// buildSeason produces the entries of a single season: one per driver, or
// one per team stint for drivers who changed teams mid-season.
func buildSeason(year int, records []schema.QualifyingRecord) []schema.DriverSeasonEntry {
	table := newSeasonTable(year, records)

	var entries []schema.DriverSeasonEntry
	for _, driver := range table.drivers {
		if table.driverTeam[driver] == "" {
			// Unresolvable team mapping: the driver is omitted entirely.
			continue
		}

		stints := segmentStints(table, driver)
		if len(stints) == 1 {
			entries = append(entries, table.buildEntry(driver, stints[0].team, 0, len(table.events)-1))
			continue
		}

		for _, s := range stints {
			entry := table.buildEntry(driver, s.team, s.start, s.end)
			entry.TeamStintInfo = &schema.TeamStintInfo{
				EventRange: schema.EventRangeLabel(table.events[s.start], table.events[s.end]),
				StartEvent: table.events[s.start],
				EndEvent:   table.events[s.end],
				StartIndex: s.start,
			}
			entries = append(entries, entry)
		}
	}
	return entries
}
