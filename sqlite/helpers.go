package sqlite

import (
	"fmt"
	"time"
)

// timeLayout is RFC3339 with a fixed-width fractional second. The fixed
// width keeps the lexicographic order of stored values identical to their
// chronological order, so ORDER BY on timestamp columns is correct.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime renders a timestamp for storage, normalized to UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp string. The RFC3339 layout accepts
// an optional fractional second on parse, so it covers timeLayout values.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
