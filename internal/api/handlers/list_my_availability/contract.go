package list_my_availability

import (
	"context"

	"github.com/m04kA/MDT-ScheduleService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetMyWindows(ctx context.Context, userID int64, role string, req *models.ListWindowsRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
