package get_blocked_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/salon-booking/internal/service/blocklist"
	"github.com/m04kA/salon-booking/internal/service/blocklist/models"
	"github.com/m04kA/salon-booking/pkg/logger"
)

type fakeService struct {
	resp *models.BlockedSlotListResponse
	err  error
}

func (f *fakeService) List(ctx context.Context) (*models.BlockedSlotListResponse, error) {
	return f.resp, f.err
}

func TestHandler_List(t *testing.T) {
	svc := &fakeService{resp: &models.BlockedSlotListResponse{
		BlockedSlots: []models.BlockedSlotResponse{{ID: 7, Date: "2026-12-25", Time: "10:00", Reason: "Natal"}},
	}}

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blocked-slots", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reason":"Natal"`)
}

func TestHandler_List_StorageUnavailable(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{err: blocklist.ErrStorageUnavailable}, logger.Nop()).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blocked-slots", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
