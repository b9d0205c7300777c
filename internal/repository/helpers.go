package repository

import (
	"database/sql"
	"time"
)

// timeLayout keeps sub-second precision so rows written in quick
// succession still sort by time.
const timeLayout = time.RFC3339Nano

// parseNullableTime returns nil for NULL, empty or unparsable values.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString maps a nil pointer to SQL NULL.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
