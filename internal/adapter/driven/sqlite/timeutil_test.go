package sqlite

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNullTime(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name  string
		input sql.NullString
		want  *time.Time
	}{
		{
			name:  "null",
			input: sql.NullString{},
		},
		{
			name:  "empty",
			input: sql.NullString{String: "", Valid: true},
		},
		{
			name:  "stored layout",
			input: sql.NullString{String: "2026-03-10 14:30:00", Valid: true},
			want:  fixedIn(loc, 2026, time.March, 10, 14, 30, 0),
		},
		{
			name:  "T separator",
			input: sql.NullString{String: "2026-03-10T14:30:00", Valid: true},
			want:  fixedIn(loc, 2026, time.March, 10, 14, 30, 0),
		},
		{
			name:  "milliseconds",
			input: sql.NullString{String: "2026-03-10 14:30:00.000", Valid: true},
			want:  fixedIn(loc, 2026, time.March, 10, 14, 30, 0),
		},
		{
			// Date-only values are read as midnight, so due dates stored this
			// way end up at 23:59:59 once normalized.
			name:  "date only",
			input: sql.NullString{String: "2026-03-10", Valid: true},
			want:  fixedIn(loc, 2026, time.March, 10, 0, 0, 0),
		},
		{
			name:  "RFC3339 converted to location",
			input: sql.NullString{String: "2026-03-10T19:30:00Z", Valid: true},
			want:  fixedIn(loc, 2026, time.March, 10, 14, 30, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNullTime(tt.input, loc)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestParseNullTime_Unrecognized(t *testing.T) {
	_, err := parseNullTime(sql.NullString{String: "10/03/2026", Valid: true}, time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized time format")
}

func TestFormatNullTime(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)

	assert.Nil(t, formatNullTime(nil, loc))

	utc := time.Date(2026, time.March, 10, 19, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10 14:30:00", formatNullTime(&utc, loc))
}

func fixedIn(loc *time.Location, year int, month time.Month, day, hour, minute, sec int) *time.Time {
	t := time.Date(year, month, day, hour, minute, sec, 0, loc)
	return &t
}
