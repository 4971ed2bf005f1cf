package create_appointment

import "errors"

var (
	// ErrMissingField возвращается, когда обязательное поле пустое
	ErrMissingField = errors.New("create_appointment: missing required field")

	// ErrInvalidInput возвращается при превышении допустимой длины полей
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается при некорректной или уже прошедшей дате
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = errors.New("create_appointment: invalid appointment time")

	// ErrUnknownService возвращается в строгом режиме для услуги вне перечня
	ErrUnknownService = errors.New("create_appointment: unknown service")

	// ErrSlotConflict возвращается, когда слот занят, заблокирован или недоступен в этот день
	ErrSlotConflict = errors.New("create_appointment: slot is not available")

	// ErrRequestInProgress возвращается, когда запрос с тем же Idempotency-Key еще выполняется
	ErrRequestInProgress = errors.New("create_appointment: request with this idempotency key is in progress")

	// ErrIdempotencyKeyReused возвращается, когда ключ уже использован для запроса с другими данными
	ErrIdempotencyKeyReused = errors.New("create_appointment: idempotency key reused with a different request")

	// ErrStorageUnavailable возвращается при ошибках хранилища или таймауте
	ErrStorageUnavailable = errors.New("create_appointment: storage unavailable")
)
