package create_appointment

import "time"

// Request модель запроса на бронирование встречи
type Request struct {
	CaseID   int64     // ID дела
	CallerID int64     // ID вызывающего (из заголовков gateway)
	Start    time.Time // Начало встречи
	End      time.Time // Конец встречи
	Note     *string   // Примечание (опционально)
}

// Response модель ответа с созданной встречей
type Response struct {
	ID         int64     // ID созданной встречи
	CaseID     int64     // ID дела
	MediatorID int64     // ID медиатора
	ClientID   int64     // ID клиента
	Start      time.Time // Начало встречи
	End        time.Time // Конец встречи
	Status     string    // Статус встречи
	CreatedBy  int64     // Кто забронировал
	Note       *string   // Примечание

	// Денормализованные данные дела и сторон
	CaseTitle    string // Название дела
	MediatorName string // Имя медиатора
	ClientName   string // Имя клиента

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
