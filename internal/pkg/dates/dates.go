// Package dates holds the date arithmetic every stay computation is built
// on. Stays occupy half-open intervals [check-in, check-out): the check-out
// day is excluded so back-to-back stays can share a boundary date.
package dates

import (
	"math"
	"time"
)

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay returns the UTC midnight following the date of t.
func NextDay(t time.Time) time.Time {
	return Day(t).AddDate(0, 0, 1)
}

// Nights returns the number of nights between check-in and check-out,
// rounding partial days up. The result is 0 or negative when
// checkOut <= checkIn; callers must reject non-positive values.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. This is the single conflict test for stays;
// a point-in-time query is the degenerate range [d, d+1 day).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
