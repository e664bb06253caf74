package create_appointment

import "errors"

var (
	// ErrCaseNotFound возвращается, когда дело не найдено
	ErrCaseNotFound = errors.New("create_appointment: case not found")

	// ErrCaseNotBookable возвращается, когда дело не находится в состоянии
	// Assigned - бронировать встречи можно только по активным делам
	ErrCaseNotBookable = errors.New("create_appointment: case is not in an assigned state")

	// ErrNotCaseParty возвращается, когда вызывающий не является стороной дела
	ErrNotCaseParty = errors.New("create_appointment: caller is not a party of the case")

	// ErrInvalidInterval возвращается, когда конец встречи не позже начала
	ErrInvalidInterval = errors.New("create_appointment: end must be after start")

	// ErrOutsideAvailability возвращается, когда интервал не помещается
	// целиком ни в одно окно доступности медиатора
	ErrOutsideAvailability = errors.New("create_appointment: requested time is outside mediator availability")

	// ErrMediatorBusy возвращается, когда у медиатора уже есть активная
	// встреча, пересекающаяся с запрошенным интервалом
	ErrMediatorBusy = errors.New("create_appointment: mediator already has an appointment in that time")

	// ErrClientBusy возвращается, когда у клиента уже есть активная
	// встреча, пересекающаяся с запрошенным интервалом
	ErrClientBusy = errors.New("create_appointment: client already has an appointment in that time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
