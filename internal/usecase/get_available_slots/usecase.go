package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// DefaultQueryTimeout ограничение на чтение доступности, если не задано в конфиге
const DefaultQueryTimeout = 3 * time.Second

// UseCase вычисляет доступные слоты на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        TimeSlotRepository
	blockRepo       BlocklistRepository
	rule            domain.WeekdayRule
	queryTimeout    time.Duration
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo TimeSlotRepository,
	blockRepo BlocklistRepository,
	rule domain.WeekdayRule,
	queryTimeout time.Duration,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		blockRepo:       blockRepo,
		rule:            rule,
		queryTimeout:    queryTimeout,
		metrics:         metrics,
		logger:          logger,
	}
}

// ListAll возвращает все слоты дня с занятостью и блокировками (для администратора)
func (uc *UseCase) ListAll(ctx context.Context, req *Request) (*Response, error) {
	return uc.execute(ctx, req, false)
}

// ListOfferable возвращает только слоты, которые можно предложить клиенту
func (uc *UseCase) ListOfferable(ctx context.Context, req *Request) (*Response, error) {
	return uc.execute(ctx, req, true)
}

func (uc *UseCase) execute(ctx context.Context, req *Request, offerable bool) (*Response, error) {
	// 1. Валидация даты до обращения к хранилищу
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	kind := uc.rule.Classify(date)

	// 2. Чтение с ограничением по времени
	readCtx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	views, err := uc.resolve(readCtx, date, true)
	degraded := false
	if err != nil {
		// 3. Чтение деградирует до запасного расписания
		uc.logger.Error("GetAvailableSlots: date=%s, serving fallback schedule: %v", req.Date, err)
		if uc.metrics != nil {
			uc.metrics.ObserveDegraded()
		}
		views = fallbackViews(uc.rule, kind)
		degraded = true
	}

	if offerable {
		views = offerableOnly(views)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, kind=%s, slots=%d, offerable_only=%t, degraded=%t",
		req.Date, kind, len(views), offerable, degraded)

	return &Response{
		Date:     date,
		DayKind:  kind,
		Degraded: degraded,
		Slots:    views,
	}, nil
}

// Resolve строгая версия для проверки при записи: ошибки хранилища не скрываются,
// запасное расписание не подставляется, поэтому записать можно только на слот
// из активного каталога. Вызывается внутри транзакции создания записи.
func (uc *UseCase) Resolve(ctx context.Context, date time.Time) ([]domain.SlotView, error) {
	return uc.resolve(ctx, date, false)
}

// resolve withFallback подставляет запасное расписание, если в каталоге нет слотов на этот день
func (uc *UseCase) resolve(ctx context.Context, date time.Time, withFallback bool) ([]domain.SlotView, error) {
	// 1. Воскресенье - выходной, слотов нет
	kind := uc.rule.Classify(date)
	if kind == domain.DayClosed {
		return []domain.SlotView{}, nil
	}

	// 2. Активный каталог, отфильтрованный правилом дня
	catalog, err := uc.slotRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list active slots: %w", ErrStorageUnavailable, err)
	}

	eligible := uc.rule.Eligible(kind, catalog)
	if len(eligible) == 0 && withFallback {
		uc.logger.Warn("GetAvailableSlots: no eligible slots in catalog for %s, using fallback schedule",
			date.Format(domain.DateFormat))
		eligible = uc.rule.Eligible(kind, domain.FallbackCatalog())
	}

	// 3. Подтвержденные записи и блокировки на дату
	appointments, err := uc.appointmentRepo.ListConfirmedByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: list confirmed appointments: %w", ErrStorageUnavailable, err)
	}

	blocks, err := uc.blockRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: list blocked slots: %w", ErrStorageUnavailable, err)
	}

	return buildViews(eligible, appointments, blocks), nil
}
