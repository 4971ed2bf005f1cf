package list_offerable_slots

import (
	"github.com/m04kA/salon-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/salon-booking/internal/usecase/get_available_slots"
)

// OfferableSlotsResponse HTTP response model
type OfferableSlotsResponse struct {
	Date     string          `json:"date"`
	Closed   bool            `json:"closed"`   // воскресенье, салон не работает
	Degraded bool            `json:"degraded"` // отдано запасное расписание
	Slots    []OfferableSlot `json:"slots"`
}

// OfferableSlot свободный слот
type OfferableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *OfferableSlotsResponse {
	slots := make([]OfferableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = OfferableSlot{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		}
	}

	return &OfferableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Closed:   resp.DayKind == domain.DayClosed,
		Degraded: resp.Degraded,
		Slots:    slots,
	}
}
