package get_available_slots

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// Request модель запроса слотов на дату
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со слотами
type Response struct {
	Date     time.Time
	DayKind  domain.DayKind
	Degraded bool              // хранилище недоступно, отдано запасное расписание
	Slots    []domain.SlotView // по возрастанию времени начала
}
