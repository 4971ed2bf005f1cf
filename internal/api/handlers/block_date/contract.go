package block_date

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/blocklist/models"
)

type BlocklistService interface {
	BlockEntireDate(ctx context.Context, req *models.BlockDateRequest) (*models.BlockDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
