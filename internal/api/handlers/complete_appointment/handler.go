package complete_appointment

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
	msgInvalidTransition = "só é possível concluir agendamentos confirmados"
)

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

// Handle PATCH /api/v1/admin/appointments/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.service.Complete(r.Context(), id)
	switch {
	case err == nil:
		h.logger.Info("PATCH /admin/appointments/{id}/complete - Appointment completed: id=%s", id)
		handlers.RespondJSON(w, http.StatusOK, StatusResponse{ID: id, Status: string(domain.StatusCompleted)})

	case errors.Is(err, appointments.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidID)

	case errors.Is(err, appointments.ErrNotFound):
		h.logger.Warn("PATCH /admin/appointments/{id}/complete - Appointment not found: id=%s", id)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, appointments.ErrInvalidTransition):
		h.logger.Warn("PATCH /admin/appointments/{id}/complete - Invalid transition: id=%s, error=%v", id, err)
		handlers.RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, appointments.ErrStorageUnavailable):
		h.logger.Error("PATCH /admin/appointments/{id}/complete - Storage unavailable: id=%s, error=%v", id, err)
		handlers.RespondServiceUnavailable(w, 1)

	default:
		h.logger.Error("PATCH /admin/appointments/{id}/complete - Failed to complete appointment: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
	}
}
