package domain

import (
	"sort"
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// TimeSlot фиксированный интервал рабочего дня из каталога
type TimeSlot struct {
	ID     int64
	Start  types.TimeString
	End    types.TimeString
	Active bool
}

// SlotView слот на конкретную дату с занятостью
type SlotView struct {
	Start      types.TimeString
	End        types.TimeString
	TakenCount int  // подтвержденные записи на (дата, Start)
	IsBlocked  bool // заблокирован администратором
}

// IsOfferable слот можно предложить клиенту
func (v SlotView) IsOfferable() bool {
	return v.TakenCount == 0 && !v.IsBlocked
}

// FallbackCatalog запасное расписание, если каталог пуст или недоступен.
// Никогда не сохраняется в БД.
func FallbackCatalog() []TimeSlot {
	starts := []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}

	slots := make([]TimeSlot, 0, len(starts))
	for _, s := range starts {
		start := types.MustTimeString(s)
		end, _ := start.AddMinutes(60)
		slots = append(slots, TimeSlot{Start: start, End: end, Active: true})
	}
	return slots
}

// SortSlots сортирует слоты по времени начала
func SortSlots(slots []TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.IsBefore(slots[j].Start)
	})
}

// BlockedSlot ручная блокировка слота администратором
type BlockedSlot struct {
	ID        int64
	Date      time.Time
	Time      types.TimeString
	Reason    string
	CreatedAt time.Time
}
