package list_mediator_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/api/handlers"
	availabilityService "github.com/m04kA/MDT-ScheduleService/internal/service/availability"
	"github.com/m04kA/MDT-ScheduleService/internal/service/availability/models"
)

const (
	msgMediatorIDRequired = "параметр mediatorId обязателен"
	msgInvalidMediatorID  = "некорректный mediatorId"
	msgInvalidRange       = "некорректный формат диапазона, ожидается RFC3339"
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

// Handle GET /api/v1/availability?mediatorId=...&from=RFC3339&to=RFC3339
// Клиент смотрит опубликованные окна медиатора перед бронированием
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mediatorIDStr := r.URL.Query().Get("mediatorId")
	if mediatorIDStr == "" {
		h.logger.Warn("GET /availability - Missing mediatorId")
		handlers.RespondBadRequest(w, msgMediatorIDRequired)
		return
	}

	mediatorID, err := strconv.ParseInt(mediatorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid mediatorId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMediatorID)
		return
	}

	req := &models.ListWindowsRequest{MediatorID: mediatorID}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		req.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		req.To = &to
	}

	result, err := h.service.GetMediatorWindows(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: mediator_id=%d", mediatorID)
			handlers.RespondBadRequest(w, msgInvalidMediatorID)

		default:
			h.logger.Error("GET /availability - Failed to list windows: mediator_id=%d, error=%v", mediatorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Returned %d windows: mediator_id=%d", len(result.Availability), mediatorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
