package timeslot

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
)

const table = "time_slots"

// Repository репозиторий каталога слотов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает активные слоты каталога по возрастанию времени начала
func (r *Repository) ListActive(ctx context.Context) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_time", "end_time", "is_active").
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(&s.ID, &s.Start, &s.End, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
