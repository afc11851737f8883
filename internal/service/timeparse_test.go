package service

import (
	"testing"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 10, 18, 9, 30, 0, 0, time.UTC)
	for _, in := range []string{
		"2025-10-18T09:30:00Z",
		"2025-10-18T11:30:00+02:00",
		"2025-10-18T09:30:00",
		"2025-10-18T09:30:00.000000",
		"2025-10-18 09:30:00",
		"2025-10-18T09:30",
	} {
		got, err := parseTimestamp("start_time", in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := parseTimestamp("start_time", "18/10/2025"); !apperrors.IsCode(err, apperrors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("bday", "2000-02-29")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Year() != 2000 || got.Month() != time.February || got.Day() != 29 {
		t.Fatalf("unexpected date %v", got)
	}
	if _, err := parseDate("bday", "2001-02-29"); !apperrors.IsCode(err, apperrors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}
