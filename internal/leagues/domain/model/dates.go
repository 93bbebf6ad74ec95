package model

import (
	"time"

	apperrors "league-backend/internal/shared/errors"
)

// Accepted calendar date layouts for caller-supplied date strings.
// JS clients historically sent anything `new Date(...)` accepts; the
// practical subset is RFC3339 with or without offset, and plain dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a caller-supplied date string into a UTC instant.
// An empty or unparseable value yields a validation error naming field.
func ParseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.NewValidationError(field + " is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("invalid " + field + " format")
}

// FormatTimestamp renders a stored instant as an ISO-8601 UTC string.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
