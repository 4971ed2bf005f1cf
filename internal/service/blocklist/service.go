package blocklist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/salon-booking/internal/domain"
	blocklistRepo "github.com/m04kA/salon-booking/internal/infra/storage/blocklist"
	"github.com/m04kA/salon-booking/internal/service/blocklist/models"
	"github.com/m04kA/salon-booking/pkg/types"
)

// DefaultQueryTimeout ограничение на обращение к хранилищу, если не задано в конфиге
const DefaultQueryTimeout = 3 * time.Second

// Service сервис ручных блокировок слотов
type Service struct {
	blockRepo    BlocklistRepository
	slotRepo     TimeSlotRepository
	txManager    TransactionManager
	queryTimeout time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockRepo BlocklistRepository,
	slotRepo TimeSlotRepository,
	txManager TransactionManager,
	queryTimeout time.Duration,
	logger Logger,
) *Service {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &Service{
		blockRepo:    blockRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

// BlockSlot блокирует (дата, время). Повторный вызов обновляет причину.
func (s *Service) BlockSlot(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("BlockSlot: date=%s, time=%s", req.Date, req.Time)

	date, err := parseDate(req.Date)
	if err != nil {
		s.logger.Warn("BlockSlot: validation failed: %v", err)
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		s.logger.Warn("BlockSlot: invalid time %q: %v", req.Time, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	reason, err := parseReason(req.Reason, "")
	if err != nil {
		s.logger.Warn("BlockSlot: validation failed: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	block, err := s.blockRepo.Upsert(ctx, &domain.BlockedSlot{Date: date, Time: slotTime, Reason: reason})
	if err != nil {
		s.logger.Error("BlockSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: BlockSlot - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("BlockSlot: blocked id=%d", block.ID)
	return models.FromDomainBlockedSlot(block), nil
}

// Unblock снимает блокировку по ID
func (s *Service) Unblock(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blocklistRepo.ErrBlockNotFound) {
			s.logger.Warn("Unblock: blocked slot id=%d not found", id)
			return ErrNotFound
		}
		s.logger.Error("Unblock: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Unblock: removed blocked slot id=%d", id)
	return nil
}

// BlockEntireDate блокирует все известные времена слотов на дату одной транзакцией.
// Если каталог пуст, используются времена запасного расписания.
func (s *Service) BlockEntireDate(ctx context.Context, req *models.BlockDateRequest) (*models.BlockDateResponse, error) {
	s.logger.Info("BlockEntireDate: date=%s", req.Date)

	date, err := parseDate(req.Date)
	if err != nil {
		s.logger.Warn("BlockEntireDate: validation failed: %v", err)
		return nil, err
	}

	reason, err := parseReason(req.Reason, domain.DefaultBlockDateReason)
	if err != nil {
		s.logger.Warn("BlockEntireDate: validation failed: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	blocks := make([]*domain.BlockedSlot, 0)
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		catalog, err := s.slotRepo.ListActive(txCtx)
		if err != nil {
			return fmt.Errorf("list active slots: %w", err)
		}
		if len(catalog) == 0 {
			catalog = domain.FallbackCatalog()
		}
		domain.SortSlots(catalog)

		for _, slot := range catalog {
			block, err := s.blockRepo.Upsert(txCtx, &domain.BlockedSlot{Date: date, Time: slot.Start, Reason: reason})
			if err != nil {
				return fmt.Errorf("block %s: %w", slot.Start, err)
			}
			blocks = append(blocks, block)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("BlockEntireDate: date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: BlockEntireDate - %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("BlockEntireDate: date=%s, blocked %d slots", req.Date, len(blocks))
	return &models.BlockDateResponse{
		Date:         date.Format(domain.DateFormat),
		BlockedSlots: models.FromDomainBlockedSlots(blocks),
	}, nil
}

// List все блокировки
func (s *Service) List(ctx context.Context) (*models.BlockedSlotListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	list, err := s.blockRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorageUnavailable, err)
	}

	return &models.BlockedSlotListResponse{BlockedSlots: models.FromDomainBlockedSlots(list)}, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	date, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}

func parseReason(reason *string, fallback string) (string, error) {
	if reason == nil || strings.TrimSpace(*reason) == "" {
		return fallback, nil
	}

	trimmed := strings.TrimSpace(*reason)
	if utf8.RuneCountInString(trimmed) > domain.MaxReasonLength {
		return "", fmt.Errorf("%w: reason longer than %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return trimmed, nil
}
