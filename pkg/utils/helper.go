package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseOptionalInt returns nil for an empty value.
func ParseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", value)
	}
	if result < 0 {
		return nil, fmt.Errorf("invalid number %q: must not be negative", value)
	}

	return &result, nil
}

// SplitCSV splits a comma separated list and drops empty entries
func SplitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseWindow builds a booking window from date (2006-01-02), start (15:04)
// and a duration in hours.
func ParseWindow(date, start string, hours float64) (time.Time, time.Time, error) {
	if hours <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid hours %v: must be positive", hours)
	}

	begin, err := time.ParseInLocation("2006-01-02 15:04", date+" "+start, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date or start time: %w", err)
	}

	end := begin.Add(time.Duration(hours * float64(time.Hour)))
	return begin, end, nil
}
