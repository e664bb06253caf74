package list_my_appointments

import (
	"context"

	"github.com/m04kA/MDT-ScheduleService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetMyAppointments(ctx context.Context, req *models.GetMyAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
