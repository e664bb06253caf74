package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	"github.com/m04kA/MDT-ScheduleService/internal/integrations/caseservice"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetActiveOverlappingByMediator(ctx context.Context, mediatorID int64, start, end time.Time) ([]*domain.Appointment, error)
	GetActiveOverlappingByClient(ctx context.Context, clientID int64, start, end time.Time) ([]*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	FindContaining(ctx context.Context, mediatorID int64, start, end time.Time) (*domain.AvailabilityWindow, error)
}

// CaseServiceClient интерфейс клиента для CaseService
type CaseServiceClient interface {
	GetCase(ctx context.Context, caseID int64) (*caseservice.Case, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
