package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	d := date(2025, 6, 10)

	assert.Equal(t, 0, Nights(d, d))
	assert.Equal(t, 1, Nights(d, d.AddDate(0, 0, 1)))
	assert.Equal(t, 3, Nights(d, d.AddDate(0, 0, 3)))
	assert.LessOrEqual(t, Nights(d.AddDate(0, 0, 2), d), 0)
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	checkIn := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, Nights(checkIn, checkOut))
}

func TestOverlaps(t *testing.T) {
	jan := func(d int) time.Time { return date(2025, 1, d) }

	// back-to-back stays share a boundary date without conflicting
	assert.False(t, Overlaps(jan(1), jan(5), jan(5), jan(10)))
	assert.False(t, Overlaps(jan(5), jan(10), jan(1), jan(5)))

	assert.True(t, Overlaps(jan(1), jan(5), jan(4), jan(10)))
	assert.True(t, Overlaps(jan(4), jan(10), jan(1), jan(5)))
	assert.True(t, Overlaps(jan(1), jan(10), jan(3), jan(5)))
	assert.True(t, Overlaps(jan(3), jan(5), jan(1), jan(10)))
	assert.True(t, Overlaps(jan(1), jan(5), jan(1), jan(5)))

	assert.False(t, Overlaps(jan(1), jan(3), jan(7), jan(9)))
}

func TestOverlaps_PointInTime(t *testing.T) {
	// "is the room taken on Jan 2" is the degenerate range [Jan 2, Jan 3)
	d := date(2025, 1, 2)

	assert.True(t, Overlaps(date(2025, 1, 1), date(2025, 1, 5), d, NextDay(d)))
	assert.False(t, Overlaps(date(2025, 1, 2), date(2025, 1, 5), date(2025, 1, 1), NextDay(date(2025, 1, 1))))
}

func TestDay(t *testing.T) {
	ts := time.Date(2025, 6, 10, 17, 45, 12, 0, time.UTC)

	assert.Equal(t, date(2025, 6, 10), Day(ts))
	assert.Equal(t, date(2025, 6, 11), NextDay(ts))
}
