package schema

// Float64Ptr returns a pointer to v. Convenient for building records and
// expected values in tests.
func Float64Ptr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// Mean averages the given values. It returns nil for an empty slice so that
// "no data" stays distinguishable from an average of zero.
func Mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

// EventRangeLabel renders the human-readable range label of a stint, for
// example "Bahrain Grand Prix–Miami Grand Prix". A single-event stint is
// labeled with just that event.
func EventRangeLabel(start, end string) string {
	if start == end {
		return start
	}
	return start + "–" + end
}
