package appointments

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListFrom(ctx context.Context, from time.Time) ([]*domain.Appointment, error)
	TransitionStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
