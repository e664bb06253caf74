package domain

import "time"

// AvailabilityWindow represents a time range a mediator has published as
// open for booking. Windows are never mutated in place: changing one is a
// delete plus a new add.
type AvailabilityWindow struct {
	ID         int64
	MediatorID int64
	StartAt    time.Time
	EndAt      time.Time
	Note       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OverlapsInterval reports whether the window overlaps [start, end).
func (w *AvailabilityWindow) OverlapsInterval(start, end time.Time) bool {
	return Overlaps(w.StartAt, w.EndAt, start, end)
}

// ContainsInterval reports whether [start, end) lies entirely within the window.
func (w *AvailabilityWindow) ContainsInterval(start, end time.Time) bool {
	return Contains(w.StartAt, w.EndAt, start, end)
}
