package utils

import (
	"math"
	"time"
)

// DefaultRecencyWindowDays is how many days after release a shoe still
// counts as new.
const DefaultRecencyWindowDays = 30

// MaxRecencyWindowDays is the widest window a time.Duration can hold.
const MaxRecencyWindowDays = int(math.MaxInt64 / int64(24*time.Hour))

// IsRecent reports whether date falls within windowDays of now, inclusive.
// Dates after now are recent too.
func IsRecent(date, now time.Time, windowDays int) bool {
	windowDays = ClampRecencyWindow(windowDays)
	window := time.Duration(windowDays) * 24 * time.Hour
	return now.Sub(date) <= window
}

// ClampRecencyWindow bounds windowDays to [0, MaxRecencyWindowDays].
func ClampRecencyWindow(windowDays int) int {
	switch {
	case windowDays < 0:
		return 0
	case windowDays > MaxRecencyWindowDays:
		return MaxRecencyWindowDays
	}
	return windowDays
}
