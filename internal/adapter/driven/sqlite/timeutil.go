package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

// dateTimeLayout is how review dates are stored: wall-clock time without a
// zone, interpreted in the location the repo was created with.
const dateTimeLayout = "2006-01-02 15:04:05"

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// parseNullTime converts a nullable stored date into a time in loc.
// NULL and empty strings yield nil.
func parseNullTime(ns sql.NullString, loc *time.Location) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}

	formats := []string{
		dateTimeLayout,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, ns.String, loc); err == nil {
			return &t, nil
		}
	}

	if t, err := time.Parse(time.RFC3339, ns.String); err == nil {
		t = t.In(loc)
		return &t, nil
	}

	return nil, fmt.Errorf("unrecognized time format: %s", ns.String)
}

// formatNullTime converts an optional time into a storable value in loc.
func formatNullTime(t *time.Time, loc *time.Location) any {
	if t == nil {
		return nil
	}
	return t.In(loc).Format(dateTimeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
