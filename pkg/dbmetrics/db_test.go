package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/pkg/metrics"
)

func TestGetExecutor_PrefersTxFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))
	assert.False(t, IsInTransaction(ctx))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, wrapped))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_RecordsQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	wrapped := Wrap(db, m)

	mock.ExpectExec("DELETE FROM blocked_slots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("connection reset"))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM blocked_slots WHERE id = $1", 1)
	require.NoError(t, err)

	_, err = wrapped.QueryContext(context.Background(), "SELECT 1")
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWrapWithDefault_StopsCollector(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stopCh := make(chan struct{})
	wrapped := WrapWithDefault(db, nil, stopCh)
	close(stopCh)

	assert.Same(t, db, wrapped.Unwrap())
}
