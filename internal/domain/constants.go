package domain

// Caller roles supplied by the gateway
const (
	RoleMediator = "Mediator"
	RoleClient   = "Client"
)

// Business validation constants
const (
	MaxWindowNoteLength      = 200
	MaxAppointmentNoteLength = 300
)

// ValidStatuses all statuses an appointment may hold
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCancelled,
	StatusCompleted,
}

// IsValidStatus reports whether s is one of the known appointment statuses
func IsValidStatus(s AppointmentStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
