package models

import (
	"strconv"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Record is a generated row that can be written as one CSV line.
// Columns and Values must have the same length and order.
type Record interface {
	Columns() []string
	Values() []string
}

// FormatDate renders a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTimestamp renders a wall-clock timestamp without zone.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatFloat renders a float with two decimals.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatBool renders booleans the way the analytics SQL expects them.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// nullable returns the empty string (NULL on load) for nil pointers.
func nullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullableDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}
