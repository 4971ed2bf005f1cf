package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	"github.com/m04kA/salon-booking/internal/service/appointments/models"
)

// DefaultQueryTimeout ограничение на обращение к хранилищу, если не задано в конфиге
const DefaultQueryTimeout = 3 * time.Second

// Service сервис просмотра записей и смены их статуса администратором
type Service struct {
	appointmentRepo AppointmentRepository
	queryTimeout    time.Duration
	now             func() time.Time
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, queryTimeout time.Duration, logger Logger) *Service {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		queryTimeout:    queryTimeout,
		now:             time.Now,
		logger:          logger,
	}
}

// WithClock подменяет источник текущего времени
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorageUnavailable, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListUpcoming записи начиная с сегодняшнего дня и статистика по ним
func (s *Service) ListUpcoming(ctx context.Context) (*models.UpcomingResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	list, err := s.appointmentRepo.ListFrom(ctx, today)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error from=%s: %v", today.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("ListUpcoming: fetched %d appointments from %s", len(list), today.Format(domain.DateFormat))
	return models.FromDomainUpcoming(list), nil
}

// Cancel confirmed -> cancelled
func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, "Cancel", id, domain.StatusCancelled)
}

// Complete confirmed -> completed
func (s *Service) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, "Complete", id, domain.StatusCompleted)
}

// transition меняет статус записи. Обновление условное (WHERE status = confirmed),
// поэтому из двух одновременных переходов проходит только один.
func (s *Service) transition(ctx context.Context, op string, id string, to domain.AppointmentStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	// 1. Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return ErrNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrStorageUnavailable, op, err)
	}

	// 2. Из конечного состояния переходов нет
	if !appt.Status.CanTransitionTo(to) {
		s.logger.Warn("%s: appointment id=%s is %s, cannot move to %s", op, id, appt.Status, to)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, to)
	}

	// 3. Условное обновление статуса
	err = s.appointmentRepo.TransitionStatus(ctx, id, domain.StatusConfirmed, to)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusMismatch) {
			s.logger.Warn("%s: appointment id=%s changed concurrently", op, id)
			return fmt.Errorf("%w: appointment is no longer confirmed", ErrInvalidTransition)
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrStorageUnavailable, op, err)
	}

	s.logger.Info("%s: appointment id=%s moved to %s", op, id, to)
	return nil
}
