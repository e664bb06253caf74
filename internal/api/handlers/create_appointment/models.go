package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/MDT-ScheduleService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CaseID int64   `json:"caseId"`
	Start  string  `json:"start"` // RFC3339
	End    string  `json:"end"`   // RFC3339
	Note   *string `json:"note,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	CaseID       int64   `json:"caseId"`
	MediatorID   int64   `json:"mediatorId"`
	ClientID     int64   `json:"clientId"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Status       string  `json:"status"`
	CreatedBy    int64   `json:"createdBy"`
	Note         *string `json:"note,omitempty"`
	CaseTitle    string  `json:"caseTitle"`
	MediatorName string  `json:"mediatorName"`
	ClientName   string  `json:"clientName"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(callerID int64) (*createAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CaseID:   r.CaseID,
		CallerID: callerID,
		Start:    start,
		End:      end,
		Note:     r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		CaseID:       resp.CaseID,
		MediatorID:   resp.MediatorID,
		ClientID:     resp.ClientID,
		Start:        resp.Start.Format(time.RFC3339),
		End:          resp.End.Format(time.RFC3339),
		Status:       resp.Status,
		CreatedBy:    resp.CreatedBy,
		Note:         resp.Note,
		CaseTitle:    resp.CaseTitle,
		MediatorName: resp.MediatorName,
		ClientName:   resp.ClientName,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
