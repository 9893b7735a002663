package core

// stint is a maximal contiguous run of events driven for a single team.
// start and end are inclusive indices into the season's event ordering.
type stint struct {
	team       string
	start, end int
}

// segmentStints reconstructs the driver's event-ordered team affiliation
// from the raw per-event records and splits the season at every team
// change. The resulting stints partition the season's events with no gaps
// or overlap: events the driver sat out inherit the team of the preceding
// stint, and absences before the first appearance fold into the first
// stint. A driver who never changed teams yields exactly one stint spanning
// the whole season.
func segmentStints(table *seasonTable, driver string) []stint {
	teams := make([]string, len(table.events))
	for i, event := range table.events {
		if rec, ok := table.driverRecord(event, driver); ok {
			teams[i] = rec.TeamName
		}
	}

	var stints []stint
	for i, team := range teams {
		if team == "" {
			if len(stints) > 0 {
				stints[len(stints)-1].end = i
			}
			continue
		}

		switch {
		case len(stints) == 0:
			stints = append(stints, stint{team: team, start: 0, end: i})
		case stints[len(stints)-1].team == team:
			stints[len(stints)-1].end = i
		default:
			stints = append(stints, stint{team: team, start: i, end: i})
		}
	}

	return stints
}
