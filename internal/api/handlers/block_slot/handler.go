package block_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/blocklist"
	"github.com/m04kA/salon-booking/internal/service/blocklist/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "data inválida, use o formato AAAA-MM-DD"
	msgInvalidTime        = "horário inválido, use o formato HH:MM"
	msgInvalidInput       = "motivo muito longo"
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

// Handle POST /api/v1/admin/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := h.service.BlockSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocklist.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, blocklist.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, blocklist.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blocklist.ErrStorageUnavailable):
			h.logger.Error("POST /admin/blocked-slots - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, 1)

		default:
			h.logger.Error("POST /admin/blocked-slots - Failed to block slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-slots - Slot blocked: id=%d, date=%s, time=%s", block.ID, block.Date, block.Time)
	handlers.RespondJSON(w, http.StatusCreated, block)
}
