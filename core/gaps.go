package core

import (
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// GapToPole computes a driver's deficit to the pole sitter in seconds.
// Unclassified drivers have no gap. The pole sitter's gap is an exact 0.0
// rather than bestTime-poleTime, which would reintroduce floating noise
// from comparing a time against itself.
func GapToPole(position *int, bestTime, poleTime *float64) *float64 {
	switch {
	case position == nil:
		return nil
	case *position == 1:
		return schema.Float64Ptr(0)
	case bestTime == nil || poleTime == nil:
		return nil
	}
	return schema.Float64Ptr(*bestTime - *poleTime)
}

// PoleTime returns the representative best time of the competitor classified
// first at this event, or nil when no such competitor exists. With a nil
// pole time every gap at the event is nil except the forced zero for any
// recorded P1.
func PoleTime(eventRecords []schema.QualifyingRecord) *float64 {
	for _, rec := range eventRecords {
		if rec.Position != nil && *rec.Position == 1 {
			return BestTime(rec)
		}
	}
	return nil
}

// TeammateGaps computes the signed head-to-head gap for a team's drivers at
// one event, keyed by driver. The gap is defined only when the team fielded
// exactly two drivers and both have a valid best time; a team of 0, 1 or 3+
// drivers (mid-season substitutions) yields nil for every member, since the
// format has no sensible pairing rule for those cases.
func TeammateGaps(teamRecords []schema.QualifyingRecord) map[string]*float64 {
	gaps := make(map[string]*float64)
	var drivers []string
	byDriver := make(map[string]schema.QualifyingRecord)
	for _, rec := range teamRecords {
		if _, seen := byDriver[rec.BroadcastName]; !seen {
			drivers = append(drivers, rec.BroadcastName)
			byDriver[rec.BroadcastName] = rec
		}
		gaps[rec.BroadcastName] = nil
	}

	if len(drivers) != 2 {
		return gaps
	}

	first := BestTime(byDriver[drivers[0]])
	second := BestTime(byDriver[drivers[1]])
	if first == nil || second == nil {
		return gaps
	}

	gaps[drivers[0]] = schema.Float64Ptr(*first - *second)
	gaps[drivers[1]] = schema.Float64Ptr(*second - *first)
	return gaps
}
