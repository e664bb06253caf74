package availability

import (
	"context"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByMediatorID(ctx context.Context, mediatorID int64, from, to *time.Time) ([]*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, mediatorID, windowID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
