package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/MDT-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/MDT-ScheduleService/internal/service/appointments/models"
)

// Service сервис для работы со встречами: чтение, отмена, завершение
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает встречу по ID
// Доступ только у сторон встречи - медиатора или клиента на записи
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if !appt.IsParty(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetMyAppointments получает встречи вызывающего
// Медиатор получает встречи по оси mediator_id, клиент - по оси client_id
func (s *Service) GetMyAppointments(ctx context.Context, req *models.GetMyAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetMyAppointments: fetching appointments for user=%d, role=%s", req.UserID, req.Role)

	var (
		items []*domain.Appointment
		err   error
	)

	switch req.Role {
	case domain.RoleMediator:
		items, err = s.appointmentRepo.GetByMediatorID(ctx, req.UserID)
	case domain.RoleClient:
		items, err = s.appointmentRepo.GetByClientID(ctx, req.UserID)
	default:
		s.logger.Warn("GetMyAppointments: unknown role=%s for user=%d", req.Role, req.UserID)
		return nil, fmt.Errorf("%w: unknown role", ErrInvalidInput)
	}

	if err != nil {
		s.logger.Error("GetMyAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetMyAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMyAppointments: successfully fetched %d appointments for user=%d", len(items), req.UserID)
	return models.FromDomainAppointmentList(items), nil
}

// Cancel отменяет встречу
// Отменить может любая из двух сторон. Операция идемпотентна: повторная
// отмена не ошибка, возвращается текущая запись без изменений
// Отмена освобождает интервал - он сразу доступен для нового бронирования
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if !appt.IsParty(userID) {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	// Идемпотентность: уже отмененная встреча возвращается как есть
	if appt.IsCancelled() {
		s.logger.Info("Cancel: appointment id=%d already cancelled", id)
		return models.FromDomainAppointment(appt), nil
	}

	// Завершенная встреча - терминальное состояние
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Перечитываем запись, чтобы вернуть актуальные статус и cancelled_at
	cancelled, err := s.getAppointment(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(cancelled), nil
}

// Complete отмечает встречу завершенной
// Доступно только медиатору встречи, только для Scheduled и только после
// того, как время встречи прошло
func (s *Service) Complete(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d by user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id, "Complete")
	if err != nil {
		return nil, err
	}

	if !appt.IsParty(userID) {
		s.logger.Warn("Complete: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if appt.MediatorID != userID {
		s.logger.Warn("Complete: user=%d is not the mediator of appointment id=%d", userID, id)
		return nil, ErrMediatorOnly
	}

	if !appt.CanBeCompleted(s.timeProvider.Now()) {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s, end=%s",
			id, appt.Status, appt.EndAt)
		return nil, ErrCannotComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	completed, err := s.getAppointment(ctx, id, "Complete")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", id)
	return models.FromDomainAppointment(completed), nil
}

// getAppointment получает встречу с маппингом ошибок репозитория
func (s *Service) getAppointment(ctx context.Context, id int64, op string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}
