package get_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/salon-booking/internal/service/appointments"
	"github.com/m04kA/salon-booking/internal/service/appointments/models"
	"github.com/m04kA/salon-booking/pkg/logger"
)

type fakeService struct {
	resp *models.AppointmentResponse
	err  error
}

func (f *fakeService) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	return f.resp, f.err
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{id}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/appointments/a-1", nil))
	return w
}

func TestHandler_GetAppointment(t *testing.T) {
	w := serve(&fakeService{resp: &models.AppointmentResponse{ID: "a-1", Status: "confirmed"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"a-1"`)
}

func TestHandler_GetAppointment_NotFound(t *testing.T) {
	w := serve(&fakeService{err: appointments.ErrNotFound})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
