package models

import (
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// Request модели

// ListWindowsRequest запрос на получение окон доступности медиатора
// Диапазон [From, To] опционален; окно попадает в выборку, если целиком
// лежит внутри диапазона
type ListWindowsRequest struct {
	MediatorID int64
	From       *time.Time
	To         *time.Time
}

// Response модели

// WindowResponse окно доступности в ответе сервиса
type WindowResponse struct {
	ID         int64     `json:"id"`
	MediatorID int64     `json:"mediatorId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// WindowListResponse список окон доступности
type WindowListResponse struct {
	Availability []*WindowResponse `json:"availability"`
}

// FromDomainWindow конвертирует domain.AvailabilityWindow в ответ сервиса
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	return &WindowResponse{
		ID:         w.ID,
		MediatorID: w.MediatorID,
		Start:      w.StartAt,
		End:        w.EndAt,
		Note:       w.Note,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список окон
func FromDomainWindowList(items []*domain.AvailabilityWindow) *WindowListResponse {
	out := make([]*WindowResponse, 0, len(items))
	for _, w := range items {
		out = append(out, FromDomainWindow(w))
	}
	return &WindowListResponse{Availability: out}
}
