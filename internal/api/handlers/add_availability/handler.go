package add_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/MDT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/MDT-ScheduleService/internal/api/middleware"
	addAvailability "github.com/m04kA/MDT-ScheduleService/internal/usecase/add_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInterval    = "конец окна должен быть позже начала"
	msgWindowOverlap      = "окно пересекается с существующим окном доступности"
	msgMediatorOnly       = "операция доступна только медиатору"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase AddAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AddAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	var req AddAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, role)
	if err != nil {
		h.logger.Warn("POST /availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addAvailability.ErrWindowOverlap):
			h.logger.Warn("POST /availability - Window overlap: mediator_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgWindowOverlap)

		case errors.Is(err, addAvailability.ErrMediatorOnly):
			h.logger.Warn("POST /availability - Not a mediator: user_id=%d", userID)
			handlers.RespondForbidden(w, msgMediatorOnly)

		case errors.Is(err, addAvailability.ErrInvalidInterval):
			h.logger.Warn("POST /availability - Invalid interval: mediator_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, addAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: mediator_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability - Failed to add availability: mediator_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Window created successfully: window_id=%d, mediator_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
