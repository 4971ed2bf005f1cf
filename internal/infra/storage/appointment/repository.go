package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/pgerrors"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
)

const table = "appointments"

// ConfirmedSlotConstraint частичный уникальный индекс (дата, время) для confirmed
const ConfirmedSlotConstraint = "appointments_confirmed_slot_uniq"

var columns = []string{
	"id",
	"client_name",
	"client_phone",
	"client_email",
	"service",
	"appointment_date",
	"appointment_time",
	"notes",
	"status",
	"created_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись. ID генерирует вызывающий код, created_at - БД.
// Нарушение индекса ConfirmedSlotConstraint возвращается как ErrSlotTaken,
// остальные нарушения уникальности (например, повтор ID) как ErrExecQuery.
// Исходная ошибка драйвера остается в цепочке, чтобы менеджер транзакций
// мог распознать конфликт сериализации.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"client_name",
			"client_phone",
			"client_email",
			"service",
			"appointment_date",
			"appointment_time",
			"notes",
			"status",
		).
		Values(
			appt.ID,
			appt.ClientName,
			appt.ClientPhone,
			appt.ClientEmail,
			appt.Service,
			appt.Date,
			appt.Time,
			appt.Notes,
			appt.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.CreatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolationOn(err, ConfirmedSlotConstraint) {
			return nil, fmt.Errorf("%w: date=%s time=%s", ErrSlotTaken, appt.Date.Format(domain.DateFormat), appt.Time)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appt, nil
}

// ListConfirmedByDate получает подтвержденные записи на дату, по возрастанию времени.
// Внутри транзакции строки блокируются (FOR UPDATE) до конца транзакции создания записи.
func (r *Repository) ListConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"appointment_date": date,
			"status":           domain.StatusConfirmed,
		}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListFrom получает все записи начиная с даты from (включительно),
// по возрастанию даты и времени. Используется панелью администратора.
func (r *Repository) ListFrom(ctx context.Context, from time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"appointment_date": from}).
		OrderBy("appointment_date ASC", "appointment_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// TransitionStatus меняет статус только если текущий статус равен from.
// Если строк не затронуто, возвращает ErrStatusMismatch: запись не существует
// или её статус уже изменил другой запрос.
func (r *Repository) TransitionStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt  domain.Appointment
		email sql.NullString
		notes sql.NullString
	)

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ClientPhone,
		&email,
		&appt.Service,
		&appt.Date,
		&appt.Time,
		&notes,
		&appt.Status,
		&appt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		appt.ClientEmail = &email.String
	}
	if notes.Valid {
		appt.Notes = &notes.String
	}

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
