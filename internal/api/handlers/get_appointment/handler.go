package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/appointments"
)

const (
	msgInvalidID = "identificador do agendamento inválido"
	msgNotFound  = "agendamento não encontrado"
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

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %q", id)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, appointments.ErrNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrStorageUnavailable):
			h.logger.Error("GET /appointments/{id} - Storage unavailable: id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, 1)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
