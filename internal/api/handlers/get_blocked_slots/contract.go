package get_blocked_slots

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/blocklist/models"
)

type BlocklistService interface {
	List(ctx context.Context) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
