package blocklist

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
)

const table = "blocked_slots"

var columns = []string{"id", "date", "time", "reason", "created_at"}

// Repository репозиторий ручных блокировок слотов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert блокирует (дата, время). Повторная блокировка той же пары
// только обновляет причину, вторая строка не появляется.
func (r *Repository) Upsert(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("date", "time", "reason").
		Values(block.Date, block.Time, block.Reason).
		Suffix("ON CONFLICT (date, time) DO UPDATE SET reason = EXCLUDED.reason RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &block.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return block, nil
}

// Delete снимает блокировку по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// ListByDate блокировки на дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByDate", query, args)
}

// List все блокировки, новые даты первыми
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("date DESC", "time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

func (r *Repository) query(ctx context.Context, op string, query string, args []interface{}) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

func scanBlocks(rows *sql.Rows) ([]*domain.BlockedSlot, error) {
	blocks := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		var b domain.BlockedSlot
		if err := rows.Scan(&b.ID, &b.Date, &b.Time, &b.Reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %w", ErrScanRow, err)
		}
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %w", ErrScanRow, err)
	}

	return blocks, nil
}
