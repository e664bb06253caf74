package appointments

import (
	"context"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByMediatorID(ctx context.Context, mediatorID int64) ([]*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
