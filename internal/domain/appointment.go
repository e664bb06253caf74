package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusCompleted AppointmentStatus = "Completed"
)

// Appointment represents a booked, case-bound meeting between one mediator
// and one client inside a published availability window
type Appointment struct {
	ID         int64
	CaseID     int64
	MediatorID int64
	ClientID   int64
	StartAt    time.Time
	EndAt      time.Time
	Status     AppointmentStatus
	CreatedBy  int64
	Note       *string

	// Denormalized case/party summary, captured at booking time
	CaseTitle    string
	MediatorName string
	ClientName   string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its interval.
// Only cancelled appointments free their slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can transition to Cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeCompleted returns true if the appointment can be marked Completed at
// the given moment: it must be Scheduled and its end time must have passed
func (a *Appointment) CanBeCompleted(now time.Time) bool {
	return a.Status == StatusScheduled && !now.Before(a.EndAt)
}

// IsParty returns true if the user is one of the two bound parties
func (a *Appointment) IsParty(userID int64) bool {
	return a.MediatorID == userID || a.ClientID == userID
}

// OverlapsInterval reports whether the appointment overlaps [start, end).
func (a *Appointment) OverlapsInterval(start, end time.Time) bool {
	return Overlaps(a.StartAt, a.EndAt, start, end)
}
