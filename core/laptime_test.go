package core

import (
	"testing"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLapTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{name: "pandas timedelta", input: "0 days 00:01:23.456000", want: schema.Float64Ptr(83.456)},
		{name: "pandas timedelta with days", input: "1 days 00:00:01", want: schema.Float64Ptr(86401)},
		{name: "clock format", input: "00:01:31.2", want: schema.Float64Ptr(91.2)},
		{name: "short format", input: "1:23.456", want: schema.Float64Ptr(83.456)},
		{name: "whole seconds", input: "1:23", want: schema.Float64Ptr(83)},
		{name: "surrounding whitespace", input: "  1:23.456  ", want: schema.Float64Ptr(83.456)},
		{name: "empty", input: "", want: nil},
		{name: "NaT sentinel", input: "NaT", want: nil},
		{name: "nan sentinel", input: "nan", want: nil},
		{name: "garbage", input: "fastest lap", want: nil},
		{name: "bare float", input: "83.456", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLapTime(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestBestTime(t *testing.T) {
	tests := []struct {
		name string
		rec  schema.QualifyingRecord
		want *float64
	}{
		{
			name: "Q3 wins over earlier segments",
			rec: schema.QualifyingRecord{
				Q1Seconds: schema.Float64Ptr(92),
				Q2Seconds: schema.Float64Ptr(91),
				Q3Seconds: schema.Float64Ptr(90),
			},
			want: schema.Float64Ptr(90),
		},
		{
			name: "Q2 when knocked out before Q3",
			rec: schema.QualifyingRecord{
				Q1Seconds: schema.Float64Ptr(92),
				Q2Seconds: schema.Float64Ptr(91),
			},
			want: schema.Float64Ptr(91),
		},
		{
			name: "Q1 only",
			rec:  schema.QualifyingRecord{Q1Seconds: schema.Float64Ptr(92)},
			want: schema.Float64Ptr(92),
		},
		{name: "no times at all", rec: schema.QualifyingRecord{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestTime(tt.rec)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestNormalizeTimes(t *testing.T) {
	rec := schema.QualifyingRecord{Q1: "0 days 00:01:32.100000", Q2: "1:31.5", Q3: ""}
	NormalizeTimes(&rec)

	require.NotNil(t, rec.Q1Seconds)
	assert.InDelta(t, 92.1, *rec.Q1Seconds, 1e-9)
	require.NotNil(t, rec.Q2Seconds)
	assert.InDelta(t, 91.5, *rec.Q2Seconds, 1e-9)
	assert.Nil(t, rec.Q3Seconds)

	// Pre-converted columns pass through untouched.
	pre := schema.QualifyingRecord{Q1: "garbage", Q1Seconds: schema.Float64Ptr(90)}
	NormalizeTimes(&pre)
	require.NotNil(t, pre.Q1Seconds)
	assert.InDelta(t, 90, *pre.Q1Seconds, 1e-9)
}
