package caseservice

import "errors"

var (
	// ErrCaseNotFound возвращается, когда дело не найдено
	ErrCaseNotFound = errors.New("case not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("caseservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("caseservice client: invalid response")
)
