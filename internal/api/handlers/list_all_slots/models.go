package list_all_slots

import (
	"github.com/m04kA/salon-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/salon-booking/internal/usecase/get_available_slots"
)

// SlotsOccupancyResponse HTTP response model для панели администратора
type SlotsOccupancyResponse struct {
	Date     string          `json:"date"`
	DayKind  string          `json:"dayKind"`
	Degraded bool            `json:"degraded"`
	Slots    []SlotOccupancy `json:"slots"`
}

// SlotOccupancy слот с занятостью
type SlotOccupancy struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	TakenCount int    `json:"takenCount"`
	IsBlocked  bool   `json:"isBlocked"`
	Offerable  bool   `json:"offerable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsOccupancyResponse {
	slots := make([]SlotOccupancy, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotOccupancy{
			Start:      slot.Start.String(),
			End:        slot.End.String(),
			TakenCount: slot.TakenCount,
			IsBlocked:  slot.IsBlocked,
			Offerable:  slot.IsOfferable(),
		}
	}

	return &SlotsOccupancyResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		DayKind:  string(resp.DayKind),
		Degraded: resp.Degraded,
		Slots:    slots,
	}
}
