package get_blocked_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/blocklist"
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

// Handle GET /api/v1/admin/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, blocklist.ErrStorageUnavailable) {
			h.logger.Error("GET /admin/blocked-slots - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, 1)
			return
		}
		h.logger.Error("GET /admin/blocked-slots - Failed to list blocked slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
