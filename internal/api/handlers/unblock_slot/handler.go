package unblock_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/blocklist"
)

const (
	msgInvalidID = "identificador do bloqueio inválido"
	msgNotFound  = "bloqueio não encontrado"
)

type Handler struct {
	service BlocklistService
	logger  Logger
}

func NewHandler(service BlocklistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/blocked-slots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/blocked-slots/{id} - Invalid ID: %q", idStr)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Unblock(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, blocklist.ErrNotFound):
			h.logger.Warn("DELETE /admin/blocked-slots/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blocklist.ErrStorageUnavailable):
			h.logger.Error("DELETE /admin/blocked-slots/{id} - Storage unavailable: id=%d, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, 1)

		default:
			h.logger.Error("DELETE /admin/blocked-slots/{id} - Failed to unblock: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-slots/{id} - Slot unblocked: id=%d", id)
	handlers.RespondNoContent(w)
}
