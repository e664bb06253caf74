package add_availability

import "time"

// Request модель запроса на публикацию окна доступности
type Request struct {
	MediatorID int64     // ID медиатора (из заголовков gateway)
	Role       string    // Роль вызывающего (из заголовков gateway)
	Start      time.Time // Начало окна
	End        time.Time // Конец окна
	Note       *string   // Примечание (опционально)
}

// Response модель ответа с созданным окном
type Response struct {
	ID         int64     // ID созданного окна
	MediatorID int64     // ID медиатора
	Start      time.Time // Начало окна
	End        time.Time // Конец окна
	Note       *string   // Примечание

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
