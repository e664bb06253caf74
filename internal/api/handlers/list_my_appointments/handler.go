package list_my_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/MDT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/MDT-ScheduleService/internal/api/middleware"
	appointmentsService "github.com/m04kA/MDT-ScheduleService/internal/service/appointments"
	"github.com/m04kA/MDT-ScheduleService/internal/service/appointments/models"
)

const msgInvalidRole = "некорректная роль пользователя"

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

// Handle GET /api/v1/appointments/my
// Медиатор видит свои встречи как медиатор, клиент - как клиент
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	result, err := h.service.GetMyAppointments(r.Context(), &models.GetMyAppointmentsRequest{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /appointments/my - Invalid role: user_id=%d, role=%s", userID, role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("GET /appointments/my - Failed to list appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/my - Returned %d appointments: user_id=%d", len(result.Appointments), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
