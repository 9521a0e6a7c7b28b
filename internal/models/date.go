// ABOUTME: Calendar date helpers for ISO yyyy-MM-dd strings.
// ABOUTME: All dates in the tracker are stored and compared as ISO strings.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used throughout the tracker.
// Lexicographic order of these strings matches chronological order.
const DateLayout = "2006-01-02"

// Today returns the current local date as an ISO date string.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDate validates an ISO date string and returns it in canonical form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t.Format(DateLayout), nil
}

// AddDays shifts an ISO date string by the given number of days.
func AddDays(date string, days int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}
