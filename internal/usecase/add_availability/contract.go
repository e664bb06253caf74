package add_availability

import (
	"context"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetOverlapping(ctx context.Context, mediatorID int64, start, end time.Time) ([]*domain.AvailabilityWindow, error)
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
