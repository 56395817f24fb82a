package change_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда приём не найден
	ErrAppointmentNotFound = errors.New("change_status: appointment not found")

	// ErrCancelledTerminal возвращается при попытке вывести приём из статуса cancelled
	ErrCancelledTerminal = errors.New("change_status: a cancelled appointment cannot change state")

	// ErrInvalidTransition возвращается при недопустимом переходе между статусами
	ErrInvalidTransition = errors.New("change_status: status transition is not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_status: internal error")
)
