package add_availability

import (
	"time"

	addAvailability "github.com/m04kA/MDT-ScheduleService/internal/usecase/add_availability"
)

// AddAvailabilityRequest HTTP request model
type AddAvailabilityRequest struct {
	Start string  `json:"start"` // RFC3339, например "2025-10-15T09:00:00Z"
	End   string  `json:"end"`   // RFC3339
	Note  *string `json:"note,omitempty"`
}

// WindowResponse HTTP response model
type WindowResponse struct {
	ID         int64   `json:"id"`
	MediatorID int64   `json:"mediatorId"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddAvailabilityRequest) ToUseCaseRequest(mediatorID int64, role string) (*addAvailability.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &addAvailability.Request{
		MediatorID: mediatorID,
		Role:       role,
		Start:      start,
		End:        end,
		Note:       r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addAvailability.Response) *WindowResponse {
	return &WindowResponse{
		ID:         resp.ID,
		MediatorID: resp.MediatorID,
		Start:      resp.Start.Format(time.RFC3339),
		End:        resp.End.Format(time.RFC3339),
		Note:       resp.Note,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
