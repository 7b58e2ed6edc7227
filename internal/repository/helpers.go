package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

// timestampLayout is fixed width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime renders t in UTC for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTime parses a stored timestamp, accepting plain RFC3339 as well.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// parseNullableDay parses a sql.NullString holding a calendar day.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableDay(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := domain.ParseDay(s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableDayToString converts a *time.Time to a calendar day suitable for
// SQLite storage, or nil (SQL NULL).
func nullableDayToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return domain.FormatDay(*t)
}

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return formatTime(time.Now())
}
