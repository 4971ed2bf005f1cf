package get_services

import (
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/domain"
)

// ServiceResponse услуга салона
type ServiceResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ServiceListResponse перечень услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := domain.Services()

	resp := ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{Code: string(s), Name: s.DisplayName()})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
