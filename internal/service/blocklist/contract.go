package blocklist

import (
	"context"

	"github.com/m04kA/salon-booking/internal/domain"
)

// BlocklistRepository интерфейс репозитория блокировок
type BlocklistRepository interface {
	Upsert(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.BlockedSlot, error)
}

// TimeSlotRepository интерфейс каталога слотов
type TimeSlotRepository interface {
	ListActive(ctx context.Context) ([]domain.TimeSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
