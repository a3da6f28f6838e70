package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the canonical yyyy-mm-dd form
const ISODateLayout = "2006-01-02"

var (
	isoDateRegex      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dayFirstDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeDateRegex = regexp.MustCompile(`^\+(\d+)\s*(d|day|days|w|week|weeks|m|month|months)$`)
)

// ParseDate parses an absolute calendar date.
// Supported formats:
// - yyyy-mm-dd (e.g., "2025-08-01")
// - dd/mm/yyyy (e.g., "01/08/2025")
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if m := isoDateRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := dayFirstDateRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[3], m[2], m[1])
	}
	return time.Time{}, fmt.Errorf("invalid date %q. Use: yyyy-mm-dd or dd/mm/yyyy", input)
}

// ParseDateFrom parses an absolute date or an offset from base such as
// "+30 days", "+2w" or "+6 months".
func ParseDateFrom(input string, base time.Time) (time.Time, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	m := relativeDateRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return ParseDate(input)
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch m[2] {
	case "d", "day", "days":
		return base.AddDate(0, 0, amount), nil
	case "w", "week", "weeks":
		return base.AddDate(0, 0, amount*7), nil
	default:
		return base.AddDate(0, amount, 0), nil
	}
}

func buildDate(ys, ms, ds string) (time.Time, error) {
	year, _ := strconv.Atoi(ys)
	month, _ := strconv.Atoi(ms)
	day, _ := strconv.Atoi(ds)

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return date, nil
}
