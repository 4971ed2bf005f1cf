package get_available_slots

import (
	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// buildViews накладывает занятость и блокировки на слоты дня.
// slots уже отфильтрованы правилом дня и отсортированы.
func buildViews(
	slots []domain.TimeSlot,
	appointments []*domain.Appointment,
	blocks []*domain.BlockedSlot,
) []domain.SlotView {
	taken := make(map[types.TimeString]int, len(appointments))
	for _, appt := range appointments {
		if appt.IsConfirmed() {
			taken[appt.Time]++
		}
	}

	blocked := make(map[types.TimeString]struct{}, len(blocks))
	for _, block := range blocks {
		blocked[block.Time] = struct{}{}
	}

	views := make([]domain.SlotView, 0, len(slots))
	for _, slot := range slots {
		_, isBlocked := blocked[slot.Start]
		views = append(views, domain.SlotView{
			Start:      slot.Start,
			End:        slot.End,
			TakenCount: taken[slot.Start],
			IsBlocked:  isBlocked,
		})
	}

	return views
}

// offerableOnly оставляет слоты без записей и блокировок
func offerableOnly(views []domain.SlotView) []domain.SlotView {
	result := make([]domain.SlotView, 0, len(views))
	for _, v := range views {
		if v.IsOfferable() {
			result = append(result, v)
		}
	}
	return result
}

// fallbackViews запасное расписание дня без занятости
func fallbackViews(rule domain.WeekdayRule, kind domain.DayKind) []domain.SlotView {
	return buildViews(rule.Eligible(kind, domain.FallbackCatalog()), nil, nil)
}
