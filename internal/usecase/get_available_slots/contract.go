package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListConfirmedByDate подтвержденные записи на дату
	ListConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// TimeSlotRepository интерфейс каталога слотов
type TimeSlotRepository interface {
	ListActive(ctx context.Context) ([]domain.TimeSlot, error)
}

// BlocklistRepository интерфейс репозитория блокировок
type BlocklistRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// Metrics счетчики деградации чтения
type Metrics interface {
	ObserveDegraded()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
