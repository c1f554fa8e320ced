package scheduling

import (
	"strconv"
	"strings"
)

// ParseTimeToMinutes converts an "HH:MM" string into minutes since midnight.
// Hours must be 0-23 and minutes 0-59; anything else is an invalidFormat error.
func ParseTimeToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, newError(CodeInvalidFormat, "invalid time %q: expected HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, newError(CodeInvalidFormat, "invalid time %q: expected HH:MM", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, newError(CodeInvalidFormat, "invalid time %q: expected HH:MM", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, newError(CodeInvalidFormat, "invalid time %q: out of range", s)
	}
	return hours*60 + minutes, nil
}

// IntervalsOverlap tests two half-open intervals [startA, endA) and
// [startB, endB) in minutes. An appointment ending exactly when another
// begins does not conflict.
func IntervalsOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}
