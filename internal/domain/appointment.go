package domain

import (
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// AppointmentStatus статус записи клиента
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsTerminal cancelled и completed - конечные состояния, из них переходов нет
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsValid проверяет, что статус известен
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo разрешены только переходы confirmed -> completed и confirmed -> cancelled
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	return s == StatusConfirmed && next.IsTerminal()
}

// Appointment запись клиента на услугу
type Appointment struct {
	ID          string
	ClientName  string
	ClientPhone string
	ClientEmail *string
	Service     Service
	Date        time.Time        // только дата, без времени
	Time        types.TimeString // начало слота
	Notes       *string
	Status      AppointmentStatus
	CreatedAt   time.Time
}

// IsConfirmed возвращает true, если запись занимает слот
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// AppointmentStats сводка для панели администратора
type AppointmentStats struct {
	Total     int
	Confirmed int
	Cancelled int
	Completed int
}

// CountStats считает записи по статусам
func CountStats(appointments []*Appointment) AppointmentStats {
	stats := AppointmentStats{Total: len(appointments)}
	for _, a := range appointments {
		switch a.Status {
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCancelled:
			stats.Cancelled++
		case StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
