package models

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Service     string  `json:"service"`
	ServiceName string  `json:"serviceName"` // название для отображения
	Date        string  `json:"date"`        // "2026-10-17"
	Time        string  `json:"time"`        // "14:00"
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// StatsResponse сводка по статусам
type StatsResponse struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

// UpcomingResponse ответ панели администратора
type UpcomingResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Stats        StatsResponse         `json:"stats"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ClientEmail: a.ClientEmail,
		Service:     string(a.Service),
		ServiceName: a.Service.DisplayName(),
		Date:        a.Date.Format(domain.DateFormat),
		Time:        a.Time.String(),
		Notes:       a.Notes,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainUpcoming конвертирует список записей и считает статистику
func FromDomainUpcoming(list []*domain.Appointment) *UpcomingResponse {
	resp := &UpcomingResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}

	for _, a := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}

	stats := domain.CountStats(list)
	resp.Stats = StatsResponse{
		Total:     stats.Total,
		Confirmed: stats.Confirmed,
		Cancelled: stats.Cancelled,
		Completed: stats.Completed,
	}

	return resp
}
