package service

import (
	"strings"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
)

// Accepted start_time layouts. Values without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseTimestamp(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.InvalidArgument("%s must be an ISO-8601 timestamp, got %q", field, s)
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.InvalidArgument("%s must be a date in YYYY-MM-DD form, got %q", field, s)
	}
	return t, nil
}
