package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/MDT-ScheduleService/internal/infra/storage/availability"
	caseClient "github.com/m04kA/MDT-ScheduleService/internal/integrations/caseservice"
)

// UseCase use case бронирования встречи
// Шаги "вложенность в окно -> конфликты медиатора -> конфликты клиента ->
// вставка" выполняются в одной сериализуемой транзакции: два параллельных
// бронирования пересекающихся интервалов у одного медиатора (или одного
// клиента) не могут пройти проверки одновременно
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	caseClient       CaseServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	caseClient CaseServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		caseClient:       caseClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case бронирования встречи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: case=%d, caller=%d, start=%s, end=%s",
		req.CaseID, req.CallerID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем дело и привязанные стороны из CaseService
	caseRecord, err := uc.caseClient.GetCase(ctx, req.CaseID)
	if err != nil {
		if errors.Is(err, caseClient.ErrCaseNotFound) {
			uc.logger.Warn("CreateAppointment: case id=%d not found", req.CaseID)
			return nil, ErrCaseNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get case id=%d: %v", req.CaseID, err)
		return nil, fmt.Errorf("%w: failed to get case: %w", ErrInternal, err)
	}

	// 3. Дело должно быть в состоянии Assigned, вызывающий - его стороной
	if err := validateCaseAccess(caseRecord, req.CallerID); err != nil {
		uc.logger.Warn("CreateAppointment: access check failed for case=%d, caller=%d: %v",
			req.CaseID, req.CallerID, err)
		return nil, err
	}

	var result *domain.Appointment

	// 4. Проверки по расписанию и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Интервал должен целиком помещаться в окно доступности медиатора
		// Окна просматриваются от самого раннего - выбор детерминирован
		window, err := uc.availabilityRepo.FindContaining(txCtx, caseRecord.MediatorID, req.Start, req.End)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
				uc.logger.Warn("CreateAppointment: no containing window for mediator=%d", caseRecord.MediatorID)
				return ErrOutsideAvailability
			}
			uc.logger.Error("CreateAppointment: failed to find containing window: %v", err)
			return fmt.Errorf("%w: failed to find containing window: %w", ErrInternal, err)
		}
		uc.logger.Info("CreateAppointment: interval fits window id=%d", window.ID)

		// 4.2. Конфликты по оси медиатора (с блокировкой FOR UPDATE)
		mediatorClashes, err := uc.appointmentRepo.GetActiveOverlappingByMediator(
			txCtx, caseRecord.MediatorID, req.Start, req.End)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get mediator conflicts: %v", err)
			return fmt.Errorf("%w: failed to get mediator conflicts: %w", ErrInternal, err)
		}
		if len(mediatorClashes) > 0 {
			uc.logger.Warn("CreateAppointment: mediator=%d busy, conflicting appointment id=%d",
				caseRecord.MediatorID, mediatorClashes[0].ID)
			return ErrMediatorBusy
		}

		// 4.3. Конфликты по оси клиента
		clientClashes, err := uc.appointmentRepo.GetActiveOverlappingByClient(
			txCtx, caseRecord.ClientID, req.Start, req.End)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get client conflicts: %v", err)
			return fmt.Errorf("%w: failed to get client conflicts: %w", ErrInternal, err)
		}
		if len(clientClashes) > 0 {
			uc.logger.Warn("CreateAppointment: client=%d busy, conflicting appointment id=%d",
				caseRecord.ClientID, clientClashes[0].ID)
			return ErrClientBusy
		}

		// 4.4. Создаем встречу с денормализацией данных дела и сторон
		appt := &domain.Appointment{
			CaseID:     req.CaseID,
			MediatorID: caseRecord.MediatorID,
			ClientID:   caseRecord.ClientID,
			StartAt:    req.Start,
			EndAt:      req.End,
			Status:     domain.StatusScheduled,
			CreatedBy:  req.CallerID,
			Note:       normalizeNote(req.Note),
			// Денормализация для истории и списков
			CaseTitle:    caseRecord.Title,
			MediatorName: caseRecord.MediatorName,
			ClientName:   caseRecord.ClientName,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d for case=%d",
		result.ID, result.CaseID)

	return &Response{
		ID:           result.ID,
		CaseID:       result.CaseID,
		MediatorID:   result.MediatorID,
		ClientID:     result.ClientID,
		Start:        result.StartAt,
		End:          result.EndAt,
		Status:       string(result.Status),
		CreatedBy:    result.CreatedBy,
		Note:         result.Note,
		CaseTitle:    result.CaseTitle,
		MediatorName: result.MediatorName,
		ClientName:   result.ClientName,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
