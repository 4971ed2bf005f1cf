package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/internal/service/appointments"
)

const (
	msgInvalidID         = "identificador do agendamento inválido"
	msgNotFound          = "agendamento não encontrado"
	msgInvalidTransition = "agendamento já foi cancelado ou concluído"
)

// StatusResponse итоговый статус записи
type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/admin/appointments/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/appointments/{id}/cancel - Invalid appointment ID: %q", id)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, appointments.ErrNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/cancel - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/appointments/{id}/cancel - Invalid transition: id=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrStorageUnavailable):
			h.logger.Error("PATCH /admin/appointments/{id}/cancel - Storage unavailable: id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, 1)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/cancel - Failed to cancel appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/cancel - Appointment cancelled: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{ID: id, Status: string(domain.StatusCancelled)})
}
