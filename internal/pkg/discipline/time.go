// Package discipline implements the attendance scoring rules: clock-text
// parsing, shift-window classification and the lateness score. It is pure
// computation over primitives so the attendance, correction and report
// services can share one copy of the rules.
package discipline

import (
	"fmt"
	"strconv"
	"strings"
)

// EmptyClock is the placeholder the attendance devices submit when an
// employee has no recorded time for a field.
const EmptyClock = "-"

// ParseTimeToMinutes converts free-form clock text into a minute-of-day.
// Accepted forms are "HH:MM" and "HH.MM", with an optional trailing seconds
// component that is ignored ("19.30.00" parses as 19:30). Empty input, the
// "-" placeholder and out-of-range hour/minute all report ok=false; invalid
// input never produces an error or panic.
func ParseTimeToMinutes(text string) (minutes int, ok bool) {
	s := strings.TrimSpace(text)
	if s == "" || s == EmptyClock {
		return 0, false
	}

	sep := ":"
	if !strings.Contains(s, ":") {
		sep = "."
	}

	parts := strings.Split(s, sep)
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// MinutesToTimeString renders a minute-of-day as zero-padded "HH:MM".
// It is the display inverse of ParseTimeToMinutes.
func MinutesToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
