package blocklist

import "errors"

var (
	// ErrNotFound возвращается, когда блокировка не найдена
	ErrNotFound = errors.New("blocklist: blocked slot not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("blocklist: invalid date")

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = errors.New("blocklist: invalid time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blocklist: invalid input data")

	// ErrStorageUnavailable возвращается при ошибках хранилища или таймауте
	ErrStorageUnavailable = errors.New("blocklist: storage unavailable")
)
