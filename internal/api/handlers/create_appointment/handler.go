package create_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	createAppointment "github.com/m04kA/salon-booking/internal/usecase/create_appointment"
)

const (
	// HeaderIdempotencyKey ключ идемпотентности, который клиент повторяет при ретраях
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplayed выставляется, если ответ взят из предыдущего запроса
	HeaderIdempotentReplayed = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 128
	retryAfterSeconds       = 2
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingField       = "preencha todos os campos obrigatórios"
	msgInvalidInput       = "dados do agendamento inválidos"
	msgInvalidDate        = "data inválida, use o formato AAAA-MM-DD"
	msgInvalidTime        = "horário inválido, use o formato HH:MM"
	msgUnknownService     = "serviço desconhecido"
	msgSlotConflict       = "este horário não está mais disponível, escolha outro"
	msgRequestInProgress  = "agendamento em processamento, aguarde"
	msgInvalidKey         = "Idempotency-Key inválido"
	msgKeyReused          = "Idempotency-Key já usado com outros dados"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	key := strings.TrimSpace(r.Header.Get(HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLength {
		h.logger.Warn("POST /appointments - Idempotency key too long: %d bytes", len(key))
		handlers.RespondBadRequest(w, msgInvalidKey)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(key))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMissingField):
			h.logger.Warn("POST /appointments - Missing field: %v", err)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Invalid time: %q", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrUnknownService):
			h.logger.Warn("POST /appointments - Unknown service: %q", req.Service)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrRequestInProgress):
			h.logger.Warn("POST /appointments - Request in progress: key=%q", key)
			handlers.RespondConflict(w, msgRequestInProgress)

		case errors.Is(err, createAppointment.ErrIdempotencyKeyReused):
			h.logger.Warn("POST /appointments - Idempotency key reused with different payload: key=%q", key)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgKeyReused)

		case errors.Is(err, createAppointment.ErrStorageUnavailable):
			h.logger.Error("POST /appointments - Storage unavailable: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondServiceUnavailable(w, retryAfterSeconds)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.Replayed {
		h.logger.Info("POST /appointments - Replayed appointment: id=%s", response.ID)
		w.Header().Set(HeaderIdempotentReplayed, "true")
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, date=%s, time=%s",
		response.ID, response.Date, response.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
