package domain

import (
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// DayKind тип дня с точки зрения расписания салона
type DayKind string

const (
	DayWeekday  DayKind = "weekday"
	DaySaturday DayKind = "saturday"
	DayClosed   DayKind = "closed"
)

// WeekdayRule правило доступности слотов по дню недели:
// пн-пт - только слоты с началом не раньше AfternoonThreshold,
// суббота - все слоты, воскресенье - выходной.
type WeekdayRule struct {
	AfternoonThreshold types.TimeString
}

// NewWeekdayRule создает правило с порогом "HH:MM"
func NewWeekdayRule(threshold string) (WeekdayRule, error) {
	ts, err := types.NewTimeStringFromString(threshold)
	if err != nil {
		return WeekdayRule{}, err
	}
	return WeekdayRule{AfternoonThreshold: ts}, nil
}

// DefaultWeekdayRule правило с порогом 14:00
func DefaultWeekdayRule() WeekdayRule {
	return WeekdayRule{AfternoonThreshold: types.MustTimeString(DefaultWeekdayOpensAt)}
}

// Classify определяет тип дня
func (r WeekdayRule) Classify(date time.Time) DayKind {
	switch date.Weekday() {
	case time.Sunday:
		return DayClosed
	case time.Saturday:
		return DaySaturday
	default:
		return DayWeekday
	}
}

// Eligible оставляет активные слоты, доступные в этот день, отсортированные по началу
func (r WeekdayRule) Eligible(kind DayKind, slots []TimeSlot) []TimeSlot {
	if kind == DayClosed {
		return []TimeSlot{}
	}

	eligible := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.Active {
			continue
		}
		if kind == DayWeekday && slot.Start.IsBefore(r.AfternoonThreshold) {
			continue
		}
		eligible = append(eligible, slot)
	}

	SortSlots(eligible)
	return eligible
}

// ParseDate парсит дату YYYY-MM-DD в UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
