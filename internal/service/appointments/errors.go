package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда встреча не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда вызывающий не является стороной встречи
	ErrAccessDenied = errors.New("access denied")

	// ErrMediatorOnly возвращается, когда операция доступна только медиатору встречи
	ErrMediatorOnly = errors.New("mediator role required")

	// ErrCannotComplete возвращается, когда встречу нельзя отметить завершенной:
	// она не в статусе Scheduled или её время ещё не прошло
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrCannotCancel возвращается, когда встречу нельзя отменить:
	// завершенная встреча - терминальное состояние
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
