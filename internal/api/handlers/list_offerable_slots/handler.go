package list_offerable_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/salon-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "data inválida, use o formato AAAA-MM-DD"
)

type Handler struct {
	useCase SlotsUseCase
	logger  Logger
}

func NewHandler(useCase SlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.ListOfferable(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to list slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - date=%s, slots=%d, degraded=%t", date, len(result.Slots), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
