package models

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// Request модели

// BlockSlotRequest запрос на блокировку слота
type BlockSlotRequest struct {
	Date   string  `json:"date"` // "2026-10-17"
	Time   string  `json:"time"` // "10:00"
	Reason *string `json:"reason,omitempty"`
}

// BlockDateRequest запрос на блокировку всего дня
type BlockDateRequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedSlotListResponse список блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// BlockDateResponse результат блокировки всего дня
type BlockDateResponse struct {
	Date         string                `json:"date"`
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}

	return &BlockedSlotResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Time:      b.Time.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedSlots конвертирует список блокировок
func FromDomainBlockedSlots(list []*domain.BlockedSlot) []BlockedSlotResponse {
	result := make([]BlockedSlotResponse, 0, len(list))
	for _, b := range list {
		result = append(result, *FromDomainBlockedSlot(b))
	}
	return result
}
