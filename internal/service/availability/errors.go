package availability

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно не найдено или принадлежит
	// другому медиатору
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrMediatorOnly возвращается, когда операция доступна только медиатору
	ErrMediatorOnly = errors.New("mediator role required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
