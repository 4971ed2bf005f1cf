package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/internal/infra/idempotency"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
}

// AvailabilityResolver строгая проверка доступности на дату (без деградации)
type AvailabilityResolver interface {
	Resolve(ctx context.Context, date time.Time) ([]domain.SlotView, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdempotencyStore хранилище ключей Idempotency-Key
type IdempotencyStore interface {
	Reserve(ctx context.Context, key, fingerprint string) (idempotency.Reservation, error)
	Complete(ctx context.Context, key, fingerprint, appointmentID string) error
	Release(ctx context.Context, key string) error
}

// Metrics счетчики исходов создания записи
type Metrics interface {
	ObserveAppointment(outcome string)
}

// IDGenerator генератор идентификаторов записей
type IDGenerator func() (string, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
