package block_date

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

// Handle POST /api/v1/admin/blocked-dates
// Блокирует все слоты каталога на дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BlockEntireDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocklist.ErrInvalidDate):
			h.logger.Warn("POST /admin/blocked-dates - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, blocklist.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blocklist.ErrStorageUnavailable):
			h.logger.Error("POST /admin/blocked-dates - Storage unavailable: date=%s, error=%v", req.Date, err)
			handlers.RespondServiceUnavailable(w, 1)

		default:
			h.logger.Error("POST /admin/blocked-dates - Failed to block date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-dates - Date blocked: date=%s, slots=%d", result.Date, len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
