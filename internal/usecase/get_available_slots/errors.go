package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (не YYYY-MM-DD)
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrStorageUnavailable возвращается строгим Resolve при ошибке хранилища
	ErrStorageUnavailable = errors.New("get_available_slots: storage unavailable")
)
