package get_upcoming_appointments

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	ListUpcoming(ctx context.Context) (*models.UpcomingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
