package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
)

// Lap times arrive as timedelta strings in one of a few shapes:
// "0 days 00:01:23.456000" (pandas), "00:01:23.456" or "1:23.456".
var lapTimeRe = regexp.MustCompile(`^(?:(\d+)\s+days?\s+)?(?:(\d+):)?(\d+):(\d+(?:\.\d+)?)$`)

// ParseLapTime converts a duration-formatted segment time into seconds.
// Empty, sentinel ("NaT", "nan") or malformed input yields nil, never an
// error: an absent segment time means the driver was eliminated in an
// earlier segment, which is ordinary data, not a failure.
func ParseLapTime(s string) *float64 {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nat", "nan", "none":
		return nil
	}

	matches := lapTimeRe.FindStringSubmatch(s)
	if matches == nil {
		return nil
	}

	var total float64
	if matches[1] != "" {
		days, _ := strconv.Atoi(matches[1])
		total += float64(days) * 24 * 3600
	}
	if matches[2] != "" {
		hours, _ := strconv.Atoi(matches[2])
		total += float64(hours) * 3600
	}
	minutes, _ := strconv.Atoi(matches[3])
	seconds, err := strconv.ParseFloat(matches[4], 64)
	if err != nil {
		return nil
	}
	total += float64(minutes)*60 + seconds

	return &total
}

// NormalizeTimes derives the seconds fields of a record from its raw
// segment strings. Already-populated seconds fields are left alone so that
// tables which ship pre-converted columns pass through unchanged.
func NormalizeTimes(rec *schema.QualifyingRecord) {
	if rec.Q1Seconds == nil {
		rec.Q1Seconds = ParseLapTime(rec.Q1)
	}
	if rec.Q2Seconds == nil {
		rec.Q2Seconds = ParseLapTime(rec.Q2)
	}
	if rec.Q3Seconds == nil {
		rec.Q3Seconds = ParseLapTime(rec.Q3)
	}
}

// BestTime selects the representative time of a knockout session in
// priority order Q3, Q2, Q1. Later segments supersede earlier ones; a nil
// later segment means the driver was knocked out before it ran.
func BestTime(rec schema.QualifyingRecord) *float64 {
	switch {
	case rec.Q3Seconds != nil:
		return rec.Q3Seconds
	case rec.Q2Seconds != nil:
		return rec.Q2Seconds
	default:
		return rec.Q1Seconds
	}
}
