package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/types"
)

const (
	monday   = "2026-10-12"
	saturday = "2026-10-17"
	sunday   = "2026-10-18"
)

type fakeStore struct {
	slots        []domain.TimeSlot
	appointments []*domain.Appointment
	blocks       []*domain.BlockedSlot

	slotsErr  error
	apptsErr  error
	blocksErr error
	calls     int

	// blockReads чтение каталога висит, пока не истечет контекст
	blockReads bool
}

func (f *fakeStore) ListActive(ctx context.Context) ([]domain.TimeSlot, error) {
	f.calls++
	if f.blockReads {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.slotsErr != nil {
		return nil, f.slotsErr
	}
	return append([]domain.TimeSlot(nil), f.slots...), nil
}

func (f *fakeStore) ListConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	f.calls++
	if f.apptsErr != nil {
		return nil, f.apptsErr
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.Date.Equal(date) && a.Status == domain.StatusConfirmed {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeStore) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	f.calls++
	if f.blocksErr != nil {
		return nil, f.blocksErr
	}
	result := make([]*domain.BlockedSlot, 0)
	for _, b := range f.blocks {
		if b.Date.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type countingMetrics struct {
	degraded int
}

func (m *countingMetrics) ObserveDegraded() { m.degraded++ }

func slot(start, end string) domain.TimeSlot {
	return domain.TimeSlot{Start: types.MustTimeString(start), End: types.MustTimeString(end), Active: true}
}

func date(s string) time.Time {
	d, _ := domain.ParseDate(s)
	return d
}

func starts(views []domain.SlotView) []string {
	result := make([]string, 0, len(views))
	for _, v := range views {
		result = append(result, v.Start.String())
	}
	return result
}

func newUseCase(store *fakeStore, m Metrics) *UseCase {
	return NewUseCase(store, store, store, domain.DefaultWeekdayRule(), time.Second, m, logger.Nop())
}

func twoSlotCatalog() *fakeStore {
	return &fakeStore{slots: []domain.TimeSlot{slot("14:00", "15:00"), slot("10:00", "11:00")}}
}

func TestListOfferable_SaturdayReturnsAllSlotsAscending(t *testing.T) {
	uc := newUseCase(twoSlotCatalog(), nil)

	resp, err := uc.ListOfferable(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.Equal(t, domain.DaySaturday, resp.DayKind)
	assert.False(t, resp.Degraded)
	assert.Equal(t, []string{"10:00", "14:00"}, starts(resp.Slots))
}

func TestListOfferable_WeekdayAfternoonOnly(t *testing.T) {
	store := twoSlotCatalog()
	uc := newUseCase(store, nil)

	resp, err := uc.ListOfferable(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00"}, starts(resp.Slots))

	// бронь на 10:00 в будний день ничего не меняет
	store.appointments = append(store.appointments, &domain.Appointment{
		Date: date(monday), Time: types.MustTimeString("10:00"), Status: domain.StatusConfirmed,
	})

	resp, err = uc.ListOfferable(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00"}, starts(resp.Slots))
}

func TestListOfferable_SundayIsEmpty(t *testing.T) {
	store := twoSlotCatalog()
	uc := newUseCase(store, nil)

	resp, err := uc.ListOfferable(context.Background(), &Request{Date: sunday})

	require.NoError(t, err)
	assert.Equal(t, domain.DayClosed, resp.DayKind)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, store.calls)
}

func TestListOfferable_ExcludesTakenAndBlocked(t *testing.T) {
	store := &fakeStore{
		slots: []domain.TimeSlot{slot("10:00", "11:00"), slot("11:00", "12:00"), slot("14:00", "15:00")},
		appointments: []*domain.Appointment{
			{Date: date(saturday), Time: types.MustTimeString("10:00"), Status: domain.StatusConfirmed},
			{Date: date(saturday), Time: types.MustTimeString("14:00"), Status: domain.StatusCancelled},
		},
		blocks: []*domain.BlockedSlot{
			{Date: date(saturday), Time: types.MustTimeString("11:00")},
		},
	}
	uc := newUseCase(store, nil)

	offerable, err := uc.ListOfferable(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00"}, starts(offerable.Slots))

	all, err := uc.ListAll(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)
	require.Len(t, all.Slots, 3)
	assert.Equal(t, 1, all.Slots[0].TakenCount)
	assert.False(t, all.Slots[0].IsBlocked)
	assert.True(t, all.Slots[1].IsBlocked)
	assert.Equal(t, 0, all.Slots[2].TakenCount)
}

func TestListAll_Idempotent(t *testing.T) {
	store := twoSlotCatalog()
	store.blocks = []*domain.BlockedSlot{{Date: date(saturday), Time: types.MustTimeString("14:00")}}
	uc := newUseCase(store, nil)

	first, err := uc.ListAll(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)
	second, err := uc.ListAll(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListOfferable_EmptyCatalogUsesFallback(t *testing.T) {
	tests := []struct {
		name string
		date string
		want []string
	}{
		{name: "saturday", date: saturday, want: []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}},
		{name: "weekday", date: monday, want: []string{"14:00", "15:00", "16:00", "17:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{
				blocks: []*domain.BlockedSlot{{Date: date(tt.date), Time: types.MustTimeString("16:00")}},
			}
			uc := newUseCase(store, nil)

			all, err := uc.ListAll(context.Background(), &Request{Date: tt.date})
			require.NoError(t, err)
			assert.False(t, all.Degraded)
			assert.Equal(t, tt.want, starts(all.Slots))

			offerable, err := uc.ListOfferable(context.Background(), &Request{Date: tt.date})
			require.NoError(t, err)
			assert.NotContains(t, starts(offerable.Slots), "16:00")
		})
	}
}

func TestListOfferable_StorageFailureDegrades(t *testing.T) {
	store := twoSlotCatalog()
	store.apptsErr = errors.New("connection reset")
	m := &countingMetrics{}
	uc := newUseCase(store, m)

	resp, err := uc.ListOfferable(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, []string{"14:00", "15:00", "16:00", "17:00"}, starts(resp.Slots))
	assert.Equal(t, 1, m.degraded)
}

func TestResolve_StorageFailureIsStrict(t *testing.T) {
	store := twoSlotCatalog()
	store.blocksErr = errors.New("timeout")
	uc := newUseCase(store, nil)

	_, err := uc.Resolve(context.Background(), date(saturday))

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, store.blocksErr)
}

func TestListOfferable_SlowStorageDegradesWithinTimeout(t *testing.T) {
	store := twoSlotCatalog()
	store.blockReads = true
	m := &countingMetrics{}
	uc := NewUseCase(store, store, store, domain.DefaultWeekdayRule(), 50*time.Millisecond, m, logger.Nop())

	started := time.Now()
	resp, err := uc.ListOfferable(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.Less(t, time.Since(started), time.Second)
	assert.True(t, resp.Degraded)
	assert.Equal(t, []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}, starts(resp.Slots))
	assert.Equal(t, 1, m.degraded)
}

func TestResolve_SlowStorageReturnsDeadline(t *testing.T) {
	store := twoSlotCatalog()
	store.blockReads = true
	uc := newUseCase(store, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := uc.Resolve(ctx, date(saturday))

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolve_EmptyCatalogHasNoFallback(t *testing.T) {
	for _, d := range []string{monday, saturday} {
		t.Run(d, func(t *testing.T) {
			uc := newUseCase(&fakeStore{}, nil)

			views, err := uc.Resolve(context.Background(), date(d))

			require.NoError(t, err)
			assert.Empty(t, views)
		})
	}
}

func TestListOfferable_InvalidDate(t *testing.T) {
	for _, raw := range []string{"", "2026-13-01", "14/10/2026", "tomorrow"} {
		t.Run(raw, func(t *testing.T) {
			store := twoSlotCatalog()
			uc := newUseCase(store, nil)

			_, err := uc.ListOfferable(context.Background(), &Request{Date: raw})

			assert.ErrorIs(t, err, ErrInvalidDate)
			assert.Zero(t, store.calls)
		})
	}
}
