package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/MDT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/MDT-ScheduleService/internal/api/middleware"
	createAppointment "github.com/m04kA/MDT-ScheduleService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInterval     = "конец встречи должен быть позже начала"
	msgCaseNotFound        = "дело не найдено"
	msgCaseNotBookable     = "дело не находится в активном состоянии"
	msgNotCaseParty        = "вы не являетесь стороной этого дела"
	msgOutsideAvailability = "запрошенное время вне окон доступности медиатора"
	msgMediatorBusy        = "у медиатора уже есть встреча в это время"
	msgClientBusy          = "у вас уже есть встреча в это время"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.UserID(r.Context())

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(callerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrOutsideAvailability):
			h.logger.Warn("POST /appointments - Outside availability: case_id=%d, caller_id=%d", req.CaseID, callerID)
			handlers.RespondError(w, http.StatusConflict, msgOutsideAvailability)

		case errors.Is(err, createAppointment.ErrMediatorBusy):
			h.logger.Warn("POST /appointments - Mediator busy: case_id=%d, caller_id=%d", req.CaseID, callerID)
			handlers.RespondError(w, http.StatusConflict, msgMediatorBusy)

		case errors.Is(err, createAppointment.ErrClientBusy):
			h.logger.Warn("POST /appointments - Client busy: case_id=%d, caller_id=%d", req.CaseID, callerID)
			handlers.RespondError(w, http.StatusConflict, msgClientBusy)

		case errors.Is(err, createAppointment.ErrCaseNotFound):
			h.logger.Warn("POST /appointments - Case not found: case_id=%d", req.CaseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, createAppointment.ErrCaseNotBookable):
			h.logger.Warn("POST /appointments - Case not bookable: case_id=%d", req.CaseID)
			handlers.RespondForbidden(w, msgCaseNotBookable)

		case errors.Is(err, createAppointment.ErrNotCaseParty):
			h.logger.Warn("POST /appointments - Not a case party: case_id=%d, caller_id=%d", req.CaseID, callerID)
			handlers.RespondForbidden(w, msgNotCaseParty)

		case errors.Is(err, createAppointment.ErrInvalidInterval):
			h.logger.Warn("POST /appointments - Invalid interval: case_id=%d, caller_id=%d", req.CaseID, callerID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: case_id=%d, caller_id=%d, error=%v", req.CaseID, callerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: case_id=%d, caller_id=%d, error=%v",
				req.CaseID, callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, case_id=%d, caller_id=%d",
		result.ID, req.CaseID, callerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
