package unblock_slot

import (
	"context"
)

type BlocklistService interface {
	Unblock(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
