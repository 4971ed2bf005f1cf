package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// parseDate валидирует дату запроса до любого обращения к хранилищу
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	date, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, raw, err)
	}

	return date, nil
}
