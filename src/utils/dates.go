package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a YYYY-MM-DD value into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(ShortDashDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}

// ParseOptionalDate treats an empty string as "no date".
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	date, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// FormatDate renders the calendar date of t, ignoring its time of day.
func FormatDate(t time.Time) string {
	return t.Format(ShortDashDateLayout)
}

func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// DateOnly truncates t to midnight UTC of its own calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBeforeDay compares calendar dates, so two times on the same day are never
// before one another regardless of their clock time.
func IsBeforeDay(a, b time.Time) bool {
	return FormatDate(a) < FormatDate(b)
}
