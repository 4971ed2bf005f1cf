package create_appointment

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	createAppointment "github.com/m04kA/salon-booking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Service     string  `json:"service"`
	Date        string  `json:"date"` // "2026-10-17"
	Time        string  `json:"time"` // "14:00"
	Notes       *string `json:"notes,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(idempotencyKey string) *createAppointment.Request {
	return &createAppointment.Request{
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ClientEmail:    r.ClientEmail,
		Service:        r.Service,
		Date:           r.Date,
		Time:           r.Time,
		Notes:          r.Notes,
		IdempotencyKey: idempotencyKey,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	a := resp.Appointment
	return &CreateAppointmentResponse{
		ID:          a.ID,
		Status:      string(a.Status),
		Service:     string(a.Service),
		ServiceName: a.Service.DisplayName(),
		Date:        a.Date.Format(domain.DateFormat),
		Time:        a.Time.String(),
		CreatedAt:   a.CreatedAt,
	}
}
