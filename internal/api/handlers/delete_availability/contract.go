package delete_availability

import "context"

type AvailabilityService interface {
	DeleteWindow(ctx context.Context, userID int64, role string, windowID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
