package list_all_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/salon-booking/internal/usecase/get_available_slots"
)

type SlotsUseCase interface {
	ListAll(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
