package create_appointment

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName     string
	ClientPhone    string
	ClientEmail    *string
	Service        string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	Notes          *string
	IdempotencyKey string // необязательный, из заголовка Idempotency-Key
}

// Response модель ответа
type Response struct {
	Appointment *domain.Appointment
	Replayed    bool // запись создана ранее запросом с тем же ключом
}

// command провалидированные данные запроса
type command struct {
	clientName  string
	clientPhone string
	clientEmail *string
	service     domain.Service
	date        time.Time
	time        types.TimeString
	notes       *string
}

// Исходы для метрики appointments_total
const (
	outcomeCreated  = "created"
	outcomeReplayed = "replayed"
	outcomeConflict = "conflict"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)
