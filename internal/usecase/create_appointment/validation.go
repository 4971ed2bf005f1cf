package create_appointment

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// validateRequest проверяет запрос до любого обращения к хранилищу.
// today - текущая дата салона (полночь, UTC), записи на прошедшие дни не принимаются.
func validateRequest(req *Request, strictServices bool, today time.Time) (*command, error) {
	cmd := &command{
		clientName:  strings.TrimSpace(req.ClientName),
		clientPhone: strings.TrimSpace(req.ClientPhone),
		clientEmail: trimOptional(req.ClientEmail),
		service:     domain.Service(strings.TrimSpace(req.Service)),
		notes:       trimOptional(req.Notes),
	}

	rawDate := strings.TrimSpace(req.Date)
	rawTime := strings.TrimSpace(req.Time)

	required := []struct {
		name  string
		value string
	}{
		{"client_name", cmd.clientName},
		{"client_phone", cmd.clientPhone},
		{"service", string(cmd.service)},
		{"date", rawDate},
		{"time", rawTime},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	if utf8.RuneCountInString(cmd.clientName) > domain.MaxClientNameLength {
		return nil, fmt.Errorf("%w: client_name longer than %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}
	if cmd.notes != nil && utf8.RuneCountInString(*cmd.notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDate, rawDate, err)
	}
	if date.Before(today) {
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, rawDate)
	}
	cmd.date = date

	slotTime, err := types.NewTimeStringFromString(rawTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTime, rawTime, err)
	}
	cmd.time = slotTime

	if strictServices && !cmd.service.IsKnown() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, cmd.service)
	}

	return cmd, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// fingerprint отпечаток нормализованного запроса для проверки повторного Idempotency-Key
func (c *command) fingerprint() string {
	h := sha256.New()
	for _, part := range []string{
		c.clientName,
		c.clientPhone,
		derefOrEmpty(c.clientEmail),
		string(c.service),
		c.date.Format(domain.DateFormat),
		c.time.String(),
		derefOrEmpty(c.notes),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
