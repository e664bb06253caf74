package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MDT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/MDT-ScheduleService/internal/api/middleware"
	appointmentsService "github.com/m04kA/MDT-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgNotFound             = "встреча не найдена"
	msgForbidden            = "доступ запрещен"
	msgCannotCancel         = "завершенную встречу нельзя отменить"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
// Повторная отмена уже отменённой встречи возвращает 200 без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.Cancel(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment cannot be cancelled: appointment_id=%d",
				appointmentID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
