package add_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// UseCase use case публикации окна доступности
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции: два параллельных добавления пересекающихся окон одного
// медиатора не могут пройти проверку одновременно
type UseCase struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case публикации окна доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddAvailability: mediator=%d, start=%s, end=%s",
		req.MediatorID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddAvailability: validation failed: %v", err)
		return nil, err
	}

	var result *domain.AvailabilityWindow

	// 2. Проверка пересечений и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Ищем пересекающиеся окна этого медиатора (с блокировкой FOR UPDATE)
		overlapping, err := uc.availabilityRepo.GetOverlapping(txCtx, req.MediatorID, req.Start, req.End)
		if err != nil {
			uc.logger.Error("AddAvailability: failed to get overlapping windows: %v", err)
			return fmt.Errorf("%w: failed to get overlapping windows: %w", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("AddAvailability: mediator=%d window overlaps existing window id=%d",
				req.MediatorID, overlapping[0].ID)
			return ErrWindowOverlap
		}

		// 2.2. Создаем окно
		window := &domain.AvailabilityWindow{
			MediatorID: req.MediatorID,
			StartAt:    req.Start,
			EndAt:      req.End,
			Note:       normalizeNote(req.Note),
		}

		created, err := uc.availabilityRepo.Create(txCtx, window)
		if err != nil {
			uc.logger.Error("AddAvailability: failed to create window: %v", err)
			return fmt.Errorf("%w: failed to create window: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AddAvailability: successfully created window id=%d for mediator=%d",
		result.ID, result.MediatorID)

	return &Response{
		ID:         result.ID,
		MediatorID: result.MediatorID,
		Start:      result.StartAt,
		End:        result.EndAt,
		Note:       result.Note,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
