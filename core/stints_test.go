package core

import (
	"fmt"
	"testing"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// midSeasonSwitchRows builds a 2023 season where ALPHA drives for Team A at
// R1-R5 and Team B at R6-R10, with a stable teammate in each stint.
func midSeasonSwitchRows() []schema.QualifyingRecord {
	var rows []schema.QualifyingRecord
	for i := 1; i <= 10; i++ {
		event := fmt.Sprintf("R%d", i)
		team := "Team A"
		mate := "BETA"
		if i > 5 {
			team = "Team B"
			mate = "GAMMA"
		}
		rows = append(rows,
			record(2023, event, "ALPHA", team, 2, sec(90.5)),
			record(2023, event, mate, team, 1, sec(90)),
		)
	}
	return rows
}

func TestSegmentStintsSingleTeam(t *testing.T) {
	rows := []schema.QualifyingRecord{
		record(2022, "R1", "ALPHA", "Red", 1, sec(90)),
		record(2022, "R2", "ALPHA", "Red", 1, sec(90)),
		record(2022, "R3", "ALPHA", "Red", 1, sec(90)),
	}
	table := newSeasonTable(2022, rows)

	stints := segmentStints(table, "ALPHA")
	require.Len(t, stints, 1)
	assert.Equal(t, stint{team: "Red", start: 0, end: 2}, stints[0])
}

func TestSegmentStintsAbsencesInheritPrecedingTeam(t *testing.T) {
	rows := []schema.QualifyingRecord{
		record(2022, "R1", "BETA", "Blue", 1, sec(90)), // ALPHA absent at R1
		record(2022, "R2", "ALPHA", "Red", 2, sec(91)),
		record(2022, "R3", "BETA", "Blue", 1, sec(90)), // ALPHA absent at R3
		record(2022, "R4", "ALPHA", "Green", 2, sec(91)),
		record(2022, "R5", "BETA", "Blue", 1, sec(90)), // trailing absence
	}
	table := newSeasonTable(2022, rows)

	stints := segmentStints(table, "ALPHA")
	require.Len(t, stints, 2)
	// Leading absence folds into the first stint; the mid-season and
	// trailing absences extend the stint they follow.
	assert.Equal(t, stint{team: "Red", start: 0, end: 2}, stints[0])
	assert.Equal(t, stint{team: "Green", start: 3, end: 4}, stints[1])
}

func TestSegmentStintsPartitionSeason(t *testing.T) {
	// Three contiguous team blocks yield exactly three stints that cover
	// the season with no gaps or overlap, ordered by first event index.
	rows := []schema.QualifyingRecord{
		record(2022, "R1", "ALPHA", "Red", 1, sec(90)),
		record(2022, "R2", "ALPHA", "Red", 1, sec(90)),
		record(2022, "R3", "ALPHA", "Blue", 1, sec(90)),
		record(2022, "R4", "ALPHA", "Red", 1, sec(90)),
		record(2022, "R5", "ALPHA", "Red", 1, sec(90)),
	}
	table := newSeasonTable(2022, rows)

	stints := segmentStints(table, "ALPHA")
	require.Len(t, stints, 3)
	assert.Equal(t, 0, stints[0].start)
	for i := 1; i < len(stints); i++ {
		assert.Equal(t, stints[i-1].end+1, stints[i].start, "stint %d must start where the previous one ended", i)
	}
	assert.Equal(t, len(table.events)-1, stints[len(stints)-1].end)
}

func TestBuildTimelineMidSeasonSwitch(t *testing.T) {
	timeline := BuildTimeline(midSeasonSwitchRows())

	var alpha []schema.DriverSeasonEntry
	for _, e := range timeline {
		if e.Driver == "ALPHA" {
			alpha = append(alpha, e)
		}
	}
	require.Len(t, alpha, 2)

	first, second := alpha[0], alpha[1]

	assert.Equal(t, "Team A", first.Team)
	require.NotNil(t, first.TeamStintInfo)
	assert.Equal(t, "R1–R5", first.TeamStintInfo.EventRange)
	assert.Equal(t, "R1", first.TeamStintInfo.StartEvent)
	assert.Equal(t, "R5", first.TeamStintInfo.EndEvent)
	assert.Equal(t, 0, first.TeamStintInfo.StartIndex)
	require.Len(t, first.Events, 5)

	assert.Equal(t, "Team B", second.Team)
	require.NotNil(t, second.TeamStintInfo)
	assert.Equal(t, "R6–R10", second.TeamStintInfo.EventRange)
	assert.Equal(t, "R6", second.TeamStintInfo.StartEvent)
	assert.Equal(t, "R10", second.TeamStintInfo.EndEvent)
	assert.Equal(t, 5, second.TeamStintInfo.StartIndex)
	require.Len(t, second.Events, 5)

	// Stint-local aggregates are computed against the stint's team: every
	// event in each stint has a valid teammate comparison.
	assert.InDelta(t, 1.0, first.DataCompleteness, 1e-9)
	assert.InDelta(t, 1.0, second.DataCompleteness, 1e-9)
	require.NotNil(t, second.AvgTeammateGap)
	assert.InDelta(t, 0.5, *second.AvgTeammateGap, 1e-9)
}

func TestBuildTimelineSingleStintHasNoStintInfo(t *testing.T) {
	rows := []schema.QualifyingRecord{
		record(2022, "R1", "ALPHA", "Red", 1, sec(90)),
		record(2022, "R2", "ALPHA", "Red", 1, sec(89)),
	}
	entry := findEntry(t, BuildTimeline(rows), 2022, "ALPHA")
	assert.Nil(t, entry.TeamStintInfo)
	assert.Len(t, entry.Events, 2)
}
