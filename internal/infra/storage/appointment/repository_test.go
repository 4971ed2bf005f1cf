package appointment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/pgerrors"
	"github.com/m04kA/salon-booking/pkg/ptr"
	"github.com/m04kA/salon-booking/pkg/types"
)

var testDate = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	createdAt := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs("a-1", "Ana", "11999990000", nil, "manicure", testDate, "14:00", ptr.Ptr("primeira vez"), "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	appt, err := repo.Create(context.Background(), &domain.Appointment{
		ID:          "a-1",
		ClientName:  "Ana",
		ClientPhone: "11999990000",
		Service:     domain.ServiceManicure,
		Date:        testDate,
		Time:        types.MustTimeString("14:00"),
		Notes:       ptr.Ptr("primeira vez"),
		Status:      domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, createdAt, appt.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: pgerrors.CodeUniqueViolation, Constraint: ConfirmedSlotConstraint})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID:     "a-2",
		Date:   testDate,
		Time:   types.MustTimeString("14:00"),
		Status: domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_PrimaryKeyClashIsNotSlotTaken(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: pgerrors.CodeUniqueViolation, Constraint: "appointments_pkey"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID:     "a-2",
		Date:   testDate,
		Time:   types.MustTimeString("14:00"),
		Status: domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotTaken)
	assert.True(t, pgerrors.IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SerializationFailureStaysInChain(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: pgerrors.CodeSerializationFailure})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID:     "a-3",
		Date:   testDate,
		Time:   types.MustTimeString("15:00"),
		Status: domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, pgerrors.IsSerializationFailure(err))
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	createdAt := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_name")).
		WithArgs("a-1").
		WillReturnRows(appointmentRows().AddRow(
			"a-1", "Ana", "11999990000", "ana@example.com", "pedicure",
			testDate, "16:00", nil, "confirmed", createdAt,
		))

	appt, err := repo.GetByID(context.Background(), "a-1")

	require.NoError(t, err)
	assert.Equal(t, domain.ServicePedicure, appt.Service)
	assert.Equal(t, types.TimeString("16:00"), appt.Time)
	require.NotNil(t, appt.ClientEmail)
	assert.Equal(t, "ana@example.com", *appt.ClientEmail)
	assert.Nil(t, appt.Notes)
	assert.Equal(t, domain.StatusConfirmed, appt.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_name")).
		WithArgs("missing").
		WillReturnRows(appointmentRows())

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_ListConfirmedByDate(t *testing.T) {
	repo, _, mock := newRepo(t)
	createdAt := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM appointments WHERE (.+) ORDER BY appointment_time ASC$`).
		WillReturnRows(appointmentRows().
			AddRow("a-1", "Ana", "1", nil, "manicure", testDate, "14:00", nil, "confirmed", createdAt).
			AddRow("a-2", "Bia", "2", nil, "cilios", testDate, "16:00", nil, "confirmed", createdAt))

	appts, err := repo.ListConfirmedByDate(context.Background(), testDate)

	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "a-1", appts[0].ID)
	assert.Equal(t, domain.ServiceLashes, appts[1].Service)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListConfirmedByDate_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY appointment_time ASC FOR UPDATE")).
		WillReturnRows(appointmentRows())
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	appts, err := repo.ListConfirmedByDate(ctx, testDate)

	require.NoError(t, err)
	assert.Empty(t, appts)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListFrom(t *testing.T) {
	repo, _, mock := newRepo(t)
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE appointment_date >= $1 ORDER BY appointment_date ASC, appointment_time ASC")).
		WithArgs(testDate).
		WillReturnRows(appointmentRows().
			AddRow("a-1", "Ana", "1", nil, "manicure", testDate, "14:00", nil, "cancelled", createdAt))

	appts, err := repo.ListFrom(context.Background(), testDate)

	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, domain.StatusCancelled, appts[0].Status)
}

func TestRepository_TransitionStatus(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{name: "confirmed row updated", rowsAffected: 1},
		{name: "row already terminal", rowsAffected: 0, wantErr: ErrStatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1 WHERE id = $2 AND status = $3")).
				WithArgs("cancelled", "a-1", "confirmed").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.TransitionStatus(context.Background(), "a-1", domain.StatusConfirmed, domain.StatusCancelled)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
