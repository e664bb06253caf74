package domain

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Touching endpoints (one interval ending
// exactly when the other starts) do not count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Contains reports whether [start, end) lies entirely within the window
// [windowStart, windowEnd]. Matching boundaries count as contained.
func Contains(windowStart, windowEnd, start, end time.Time) bool {
	return !windowStart.After(start) && !windowEnd.Before(end)
}
