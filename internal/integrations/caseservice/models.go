package caseservice

// Статусы дела в CaseService
const (
	CaseStatusDraft     = "Draft"
	CaseStatusSubmitted = "Submitted"
	CaseStatusAssigned  = "Assigned"
)

// Case модель дела из CaseService
// Содержит привязанные стороны и их отображаемые имена - сервис расписаний
// денормализует их в запись встречи при бронировании
type Case struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	MediatorID   int64  `json:"mediator_id"`
	ClientID     int64  `json:"client_id"`
	MediatorName string `json:"mediator_name"`
	ClientName   string `json:"client_name"`
}

// IsAssigned сообщает, что дело находится в активном состоянии с назначенным
// медиатором - только такие дела допускают бронирование встреч
func (c *Case) IsAssigned() bool {
	return c.Status == CaseStatusAssigned && c.MediatorID > 0 && c.ClientID > 0
}

// IsParty сообщает, является ли пользователь одной из сторон дела
func (c *Case) IsParty(userID int64) bool {
	return c.MediatorID == userID || c.ClientID == userID
}

// ErrorResponse модель ошибки от CaseService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
