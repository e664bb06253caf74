package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/MDT-ScheduleService/internal/infra/storage/availability"
	"github.com/m04kA/MDT-ScheduleService/internal/service/availability/models"
)

// Service сервис для чтения и удаления окон доступности
// Создание окон живет в usecase/add_availability - там нужна сериализуемая
// транзакция для проверки пересечений
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса окон доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetMyWindows получает окна доступности вызывающего медиатора
func (s *Service) GetMyWindows(ctx context.Context, userID int64, role string, req *models.ListWindowsRequest) (*models.WindowListResponse, error) {
	s.logger.Info("GetMyWindows: fetching windows for mediator=%d", userID)

	if role != domain.RoleMediator {
		s.logger.Warn("GetMyWindows: user=%d with role=%s is not a mediator", userID, role)
		return nil, ErrMediatorOnly
	}

	return s.listWindows(ctx, userID, req)
}

// GetMediatorWindows получает окна доступности указанного медиатора
// Доступно любой аутентифицированной стороне - клиент выбирает время
// из опубликованных окон медиатора
func (s *Service) GetMediatorWindows(ctx context.Context, req *models.ListWindowsRequest) (*models.WindowListResponse, error) {
	s.logger.Info("GetMediatorWindows: fetching windows for mediator=%d", req.MediatorID)

	if req.MediatorID <= 0 {
		return nil, fmt.Errorf("%w: mediatorID must be positive", ErrInvalidInput)
	}

	return s.listWindows(ctx, req.MediatorID, req)
}

// DeleteWindow удаляет окно доступности
// Удалить окно может только его владелец; встречи, забронированные в этом
// окне, не затрагиваются - вложенность проверяется только при бронировании
func (s *Service) DeleteWindow(ctx context.Context, userID int64, role string, windowID int64) error {
	s.logger.Info("DeleteWindow: deleting window id=%d by mediator=%d", windowID, userID)

	if role != domain.RoleMediator {
		s.logger.Warn("DeleteWindow: user=%d with role=%s is not a mediator", userID, role)
		return ErrMediatorOnly
	}

	if err := s.availabilityRepo.Delete(ctx, userID, windowID); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("DeleteWindow: window id=%d not found for mediator=%d", windowID, userID)
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteWindow: repository error for window id=%d: %v", windowID, err)
		return fmt.Errorf("%w: DeleteWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWindow: successfully deleted window id=%d", windowID)
	return nil
}

func (s *Service) listWindows(ctx context.Context, mediatorID int64, req *models.ListWindowsRequest) (*models.WindowListResponse, error) {
	items, err := s.availabilityRepo.GetByMediatorID(ctx, mediatorID, req.From, req.To)
	if err != nil {
		s.logger.Error("listWindows: repository error for mediator=%d: %v", mediatorID, err)
		return nil, fmt.Errorf("%w: listWindows - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("listWindows: successfully fetched %d windows for mediator=%d", len(items), mediatorID)
	return models.FromDomainWindowList(items), nil
}
