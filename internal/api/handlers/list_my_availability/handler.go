package list_my_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/MDT-ScheduleService/internal/api/middleware"
	availabilityService "github.com/m04kA/MDT-ScheduleService/internal/service/availability"
	"github.com/m04kA/MDT-ScheduleService/internal/service/availability/models"
)

const (
	msgInvalidRange = "некорректный формат диапазона, ожидается RFC3339"
	msgMediatorOnly = "операция доступна только медиатору"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/my?from=RFC3339&to=RFC3339
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	req := &models.ListWindowsRequest{MediatorID: userID}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /availability/my - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		req.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /availability/my - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		req.To = &to
	}

	result, err := h.service.GetMyWindows(r.Context(), userID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrMediatorOnly):
			h.logger.Warn("GET /availability/my - Not a mediator: user_id=%d", userID)
			handlers.RespondForbidden(w, msgMediatorOnly)

		default:
			h.logger.Error("GET /availability/my - Failed to list windows: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/my - Returned %d windows: mediator_id=%d", len(result.Availability), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
