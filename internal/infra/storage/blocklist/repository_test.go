package blocklist

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

var testDate = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newRepo(t)
	createdAt := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blocked_slots (date,time,reason) VALUES ($1,$2,$3) ON CONFLICT (date, time) DO UPDATE SET reason = EXCLUDED.reason RETURNING id, created_at")).
		WithArgs(testDate, "10:00", "feriado").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

	block, err := repo.Upsert(context.Background(), &domain.BlockedSlot{
		Date:   testDate,
		Time:   types.MustTimeString("10:00"),
		Reason: "feriado",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), block.ID)
	assert.Equal(t, createdAt, block.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{name: "existing block removed", rowsAffected: 1},
		{name: "unknown id", rowsAffected: 0, wantErr: ErrBlockNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blocked_slots WHERE id = $1")).
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.Delete(context.Background(), 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ListByDate(t *testing.T) {
	repo, mock := newRepo(t)
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_slots WHERE date = $1 ORDER BY time ASC")).
		WithArgs(testDate).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, testDate, "10:00", "", createdAt).
			AddRow(2, testDate, "11:00", "almoço", createdAt))

	blocks, err := repo.ListByDate(context.Background(), testDate)

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, types.TimeString("11:00"), blocks[1].Time)
	assert.Equal(t, "almoço", blocks[1].Reason)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_slots ORDER BY date DESC, time DESC")).
		WillReturnRows(sqlmock.NewRows(columns))

	blocks, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, blocks)
	assert.NoError(t, mock.ExpectationsWereMet())
}
