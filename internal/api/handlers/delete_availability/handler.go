package delete_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MDT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/MDT-ScheduleService/internal/api/middleware"
	availabilityService "github.com/m04kA/MDT-ScheduleService/internal/service/availability"
)

const (
	msgInvalidWindowID = "некорректный ID окна"
	msgNotFound        = "окно доступности не найдено"
	msgMediatorOnly    = "операция доступна только медиатору"
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

// Handle DELETE /api/v1/availability/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	vars := mux.Vars(r)
	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.DeleteWindow(r.Context(), userID, role, windowID); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrWindowNotFound):
			h.logger.Warn("DELETE /availability/{id} - Window not found: window_id=%d, mediator_id=%d", windowID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availabilityService.ErrMediatorOnly):
			h.logger.Warn("DELETE /availability/{id} - Not a mediator: user_id=%d", userID)
			handlers.RespondForbidden(w, msgMediatorOnly)

		default:
			h.logger.Error("DELETE /availability/{id} - Failed to delete window: window_id=%d, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/{id} - Window deleted successfully: window_id=%d, mediator_id=%d",
		windowID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
