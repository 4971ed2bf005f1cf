package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/internal/infra/idempotency"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
)

// DefaultQueryTimeout ограничение на всю операцию создания, если не задано в конфиге
const DefaultQueryTimeout = 5 * time.Second

// Options настройки use case
type Options struct {
	StrictServices bool          // отклонять услуги вне перечня
	QueryTimeout   time.Duration // ограничение на работу с хранилищем
}

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	resolver        AvailabilityResolver
	txManager       TransactionManager
	idempotency     IdempotencyStore
	metrics         Metrics
	newID           IDGenerator
	now             func() time.Time
	opts            Options
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. idempotency и metrics могут быть nil.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	resolver AvailabilityResolver,
	txManager TransactionManager,
	idempotency IdempotencyStore,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultQueryTimeout
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		txManager:       txManager,
		idempotency:     idempotency,
		metrics:         metrics,
		newID:           newUUIDv7,
		now:             time.Now,
		opts:            opts,
		logger:          logger,
	}
}

// WithIDGenerator подменяет генератор идентификаторов
func (uc *UseCase) WithIDGenerator(gen IDGenerator) *UseCase {
	uc.newID = gen
	return uc
}

// WithClock подменяет источник текущего времени. Дата "сегодня" берется
// в часовом поясе возвращаемого времени.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s", req.Service, req.Date, req.Time)

	// 1. Валидация входных данных
	cmd, err := validateRequest(req, uc.opts.StrictServices, uc.today())
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.observe(outcomeInvalid)
		return nil, err
	}

	// 2. Ключ идемпотентности
	fingerprint := cmd.fingerprint()
	reserved := false
	if req.IdempotencyKey != "" && uc.idempotency != nil {
		resp, ok, err := uc.reserve(ctx, req.IdempotencyKey, fingerprint)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			return resp, nil
		}
		reserved = ok
	}

	// 3. Создание записи в транзакции с ограничением по времени
	opCtx, cancel := context.WithTimeout(ctx, uc.opts.QueryTimeout)
	defer cancel()

	var result *domain.Appointment
	err = uc.txManager.DoSerializable(opCtx, func(txCtx context.Context) error {
		created, err := uc.createInTx(txCtx, cmd)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		if reserved {
			uc.release(ctx, req.IdempotencyKey)
		}

		if errors.Is(err, ErrSlotConflict) {
			uc.logger.Warn("CreateAppointment: date=%s, time=%s: %v", req.Date, req.Time, err)
			uc.observe(outcomeConflict)
			return nil, ErrSlotConflict
		}

		uc.logger.Error("CreateAppointment: date=%s, time=%s: %v", req.Date, req.Time, err)
		uc.observe(outcomeError)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	// 4. Запоминаем результат под ключом идемпотентности
	if reserved {
		if err := uc.idempotency.Complete(context.WithoutCancel(ctx), req.IdempotencyKey, fingerprint, result.ID); err != nil {
			uc.logger.Warn("CreateAppointment: failed to store idempotency key for id=%s: %v", result.ID, err)
		}
	}

	uc.observe(outcomeCreated)
	uc.logger.Info("CreateAppointment: created id=%s, date=%s, time=%s",
		result.ID, result.Date.Format(domain.DateFormat), result.Time)

	return &Response{Appointment: result}, nil
}

// createInTx повторная проверка доступности и вставка. Выполняется внутри транзакции,
// при конфликте сериализации менеджер транзакций вызывает её заново.
func (uc *UseCase) createInTx(ctx context.Context, cmd *command) (*domain.Appointment, error) {
	// 1. Доступность на момент записи
	views, err := uc.resolver.Resolve(ctx, cmd.date)
	if err != nil {
		return nil, fmt.Errorf("resolve availability: %w", err)
	}

	if !isOfferable(views, cmd) {
		return nil, fmt.Errorf("%w: date=%s time=%s", ErrSlotConflict, cmd.date.Format(domain.DateFormat), cmd.time)
	}

	// 2. Идентификатор записи
	id, err := uc.newID()
	if err != nil {
		return nil, fmt.Errorf("generate appointment id: %w", err)
	}

	// 3. Вставка со статусом confirmed
	created, err := uc.appointmentRepo.Create(ctx, &domain.Appointment{
		ID:          id,
		ClientName:  cmd.clientName,
		ClientPhone: cmd.clientPhone,
		ClientEmail: cmd.clientEmail,
		Service:     cmd.service,
		Date:        cmd.date,
		Time:        cmd.time,
		Notes:       cmd.notes,
		Status:      domain.StatusConfirmed,
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, fmt.Errorf("%w: %v", ErrSlotConflict, err)
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	return created, nil
}

// reserve занимает ключ идемпотентности. Возвращает готовый ответ для повторного запроса.
// Недоступность Redis не мешает созданию записи.
func (uc *UseCase) reserve(ctx context.Context, key, fingerprint string) (*Response, bool, error) {
	reservation, err := uc.idempotency.Reserve(ctx, key, fingerprint)
	if err != nil {
		uc.logger.Warn("CreateAppointment: idempotency store unavailable, proceeding without key: %v", err)
		return nil, false, nil
	}

	switch reservation.State {
	case idempotency.StateMismatch:
		uc.logger.Warn("CreateAppointment: idempotency key %q was used for a different request", key)
		uc.observe(outcomeInvalid)
		return nil, false, ErrIdempotencyKeyReused

	case idempotency.StateInProgress:
		uc.logger.Warn("CreateAppointment: idempotency key %q is in progress", key)
		return nil, false, ErrRequestInProgress

	case idempotency.StateCompleted:
		readCtx, cancel := context.WithTimeout(ctx, uc.opts.QueryTimeout)
		defer cancel()

		appt, err := uc.appointmentRepo.GetByID(readCtx, reservation.AppointmentID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load replayed appointment id=%s: %v",
				reservation.AppointmentID, err)
			return nil, false, fmt.Errorf("%w: load replayed appointment: %v", ErrStorageUnavailable, err)
		}

		uc.logger.Info("CreateAppointment: replayed id=%s for idempotency key %q", appt.ID, key)
		uc.observe(outcomeReplayed)
		return &Response{Appointment: appt, Replayed: true}, false, nil
	}

	return nil, true, nil
}

func (uc *UseCase) release(ctx context.Context, key string) {
	if err := uc.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
		uc.logger.Warn("CreateAppointment: failed to release idempotency key %q: %v", key, err)
	}
}

// today текущая дата салона в виде полуночи UTC, как и даты из запроса
func (uc *UseCase) today() time.Time {
	now := uc.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveAppointment(outcome)
	}
}

// isOfferable проверяет, что время входит в слоты дня и слот свободен
func isOfferable(views []domain.SlotView, cmd *command) bool {
	for _, v := range views {
		if v.Start == cmd.time {
			return v.IsOfferable()
		}
	}
	return false
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
