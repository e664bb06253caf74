package add_availability

import "errors"

var (
	// ErrMediatorOnly возвращается, когда окно пытается создать не медиатор
	ErrMediatorOnly = errors.New("add_availability: mediator role required")

	// ErrInvalidInterval возвращается, когда конец окна не позже начала
	ErrInvalidInterval = errors.New("add_availability: end must be after start")

	// ErrWindowOverlap возвращается, когда новое окно пересекается с
	// существующим окном того же медиатора
	ErrWindowOverlap = errors.New("add_availability: overlaps an existing availability window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_availability: internal error")
)
