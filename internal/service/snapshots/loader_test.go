package snapshots

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	stale atomic.Int32
}

func (m *countingMetrics) IncStaleFetch() { m.stale.Add(1) }

// blockingRepo блокирует первый вызов до отмены контекста
type blockingRepo struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	result  []*domain.Booking
}

func (r *blockingRepo) GetByVenueAndDate(ctx context.Context, _ domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	r.calls++
	n := r.calls
	r.mu.Unlock()

	if n == 1 {
		close(r.started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return r.result, nil
}

type staticRepo struct {
	bookings []*domain.Booking
	err      error
	filter   domain.VenueBookingsFilter
}

func (r *staticRepo) GetByVenueAndDate(_ context.Context, f domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	r.filter = f
	return r.bookings, r.err
}

var day = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

func TestLoader_LastInitiatedWins(t *testing.T) {
	fresh := []*domain.Booking{{ID: 2}}
	repo := &blockingRepo{started: make(chan struct{}), result: fresh}
	metrics := &countingMetrics{}
	loader := NewLoader(repo, time.Second, metrics, nopLogger{})

	type outcome struct {
		bookings []*domain.Booking
		err      error
	}
	first := make(chan outcome, 1)
	go func() {
		b, err := loader.Load(context.Background(), "client-1", 1, day)
		first <- outcome{b, err}
	}()

	<-repo.started
	got, err := loader.Load(context.Background(), "client-1", 1, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	res := <-first
	assert.ErrorIs(t, res.err, ErrStaleFetchDiscarded)
	assert.Nil(t, res.bookings)
	assert.Equal(t, int32(1), metrics.stale.Load())
	assert.Zero(t, loader.InFlight())
}

func TestLoader_DifferentChannelsIndependent(t *testing.T) {
	repo := &staticRepo{bookings: []*domain.Booking{{ID: 1}}}
	loader := NewLoader(repo, 0, &countingMetrics{}, nopLogger{})

	a, err := loader.Load(context.Background(), "a", 1, day)
	require.NoError(t, err)
	b, err := loader.Load(context.Background(), "b", 1, day)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLoader_FilterUsesOccupyingStatuses(t *testing.T) {
	repo := &staticRepo{}
	loader := NewLoader(repo, 0, &countingMetrics{}, nopLogger{})

	_, err := loader.Load(context.Background(), "", 7, day)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.filter.VenueID)
	assert.True(t, day.Equal(repo.filter.Date))
	assert.Nil(t, repo.filter.Statuses)
}

func TestLoader_RepositoryError(t *testing.T) {
	repo := &staticRepo{err: errors.New("db down")}
	loader := NewLoader(repo, 0, &countingMetrics{}, nopLogger{})

	_, err := loader.Load(context.Background(), "c", 1, day)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrStaleFetchDiscarded)
}
