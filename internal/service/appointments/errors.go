package appointments

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidTransition возвращается при смене статуса из конечного состояния
	ErrInvalidTransition = errors.New("appointments: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrStorageUnavailable возвращается при ошибках хранилища или таймауте
	ErrStorageUnavailable = errors.New("appointments: storage unavailable")
)
