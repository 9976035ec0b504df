package entities

import "time"

// parseTimestamp converts a platform timestamp string (RFC3339 with
// fractional seconds) to a time value. Absent or unparseable input maps
// to the zero time, which entity fields document as "never".
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// formatTimestamp is the inverse of parseTimestamp; the zero time maps
// to the empty string so builders can omit the key.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
