package models

import (
	"time"

	"github.com/m04kA/MDT-ScheduleService/internal/domain"
)

// Request модели

// GetMyAppointmentsRequest запрос на получение встреч вызывающего
// Ось выборки определяется ролью: медиатор видит свои встречи как медиатор,
// клиент - как клиент
type GetMyAppointmentsRequest struct {
	UserID int64
	Role   string
}

// Response модели

// AppointmentResponse встреча в ответе сервиса
type AppointmentResponse struct {
	ID           int64      `json:"id"`
	CaseID       int64      `json:"caseId"`
	MediatorID   int64      `json:"mediatorId"`
	ClientID     int64      `json:"clientId"`
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	Status       string     `json:"status"`
	CreatedBy    int64      `json:"createdBy"`
	Note         *string    `json:"note,omitempty"`
	CaseTitle    string     `json:"caseTitle"`
	MediatorName string     `json:"mediatorName"`
	ClientName   string     `json:"clientName"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AppointmentListResponse список встреч
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain.Appointment в ответ сервиса
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           a.ID,
		CaseID:       a.CaseID,
		MediatorID:   a.MediatorID,
		ClientID:     a.ClientID,
		Start:        a.StartAt,
		End:          a.EndAt,
		Status:       string(a.Status),
		CreatedBy:    a.CreatedBy,
		Note:         a.Note,
		CaseTitle:    a.CaseTitle,
		MediatorName: a.MediatorName,
		ClientName:   a.ClientName,
		CancelledAt:  a.CancelledAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список встреч
func FromDomainAppointmentList(items []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: out}
}
