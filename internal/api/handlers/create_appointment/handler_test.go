package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	createAppointment "github.com/m04kA/salon-booking/internal/usecase/create_appointment"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/types"
)

type fakeUseCase struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"clientName":"Ana","clientPhone":"11987654321","service":"manicure","date":"2026-10-17","time":"10:00"}`

func appointmentResponse(replayed bool) *createAppointment.Response {
	return &createAppointment.Response{
		Appointment: &domain.Appointment{
			ID:        "0192a1b2-0000-7000-8000-000000000001",
			Service:   domain.ServiceManicure,
			Date:      time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
			Time:      types.MustTimeString("10:00"),
			Status:    domain.StatusConfirmed,
			CreatedAt: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
		},
		Replayed: replayed,
	}
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{resp: appointmentResponse(false)}
	h := NewHandler(uc, logger.Nop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	r.Header.Set(HeaderIdempotencyKey, " key-1 ")
	w := httptest.NewRecorder()

	h.Handle(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "key-1", uc.got.IdempotencyKey)
	assert.Equal(t, "Ana", uc.got.ClientName)

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, "2026-10-17", resp.Date)
	assert.Empty(t, w.Header().Get(HeaderIdempotentReplayed))
}

func TestHandler_Replayed(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: appointmentResponse(true)}, logger.Nop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get(HeaderIdempotentReplayed))
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{createAppointment.ErrMissingField, http.StatusBadRequest},
		{createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{createAppointment.ErrInvalidDate, http.StatusBadRequest},
		{createAppointment.ErrInvalidTime, http.StatusBadRequest},
		{createAppointment.ErrUnknownService, http.StatusBadRequest},
		{createAppointment.ErrSlotConflict, http.StatusConflict},
		{createAppointment.ErrRequestInProgress, http.StatusConflict},
		{createAppointment.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: deadline exceeded", createAppointment.ErrStorageUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.Nop())

			r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
			w := httptest.NewRecorder()

			h.Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusServiceUnavailable {
				assert.NotEmpty(t, w.Header().Get("Retry-After"))
			}
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`{"clientName":`))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)
}

func TestHandler_IdempotencyKeyTooLong(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	r.Header.Set(HeaderIdempotencyKey, strings.Repeat("k", maxIdempotencyKeyLength+1))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)
}
