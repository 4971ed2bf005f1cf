package get_upcoming_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/appointments"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Записи с сегодняшнего дня и сводка по статусам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		if errors.Is(err, appointments.ErrStorageUnavailable) {
			h.logger.Error("GET /admin/appointments - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, 1)
			return
		}
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Listed %d appointments", result.Stats.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
