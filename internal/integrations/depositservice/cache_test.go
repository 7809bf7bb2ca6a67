package depositservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

type fakeRedis struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.sets++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

type fakeSource struct {
	rules []domain.DepositRule
	err   error
	calls int
}

func (f *fakeSource) GetDepositRulesWithGracefulDegradation(context.Context, int64) ([]domain.DepositRule, error) {
	f.calls++
	return f.rules, f.err
}

func TestCachedClient_MissThenHit(t *testing.T) {
	rules := []domain.DepositRule{{DaysBeforeThreshold: 30, Percentage: 25}}
	source := &fakeSource{rules: rules}
	rdb := newFakeRedis()
	cached := NewCachedClient(source, rdb, time.Minute, nopLogger{})

	got, err := cached.GetDepositRulesWithGracefulDegradation(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
	assert.Equal(t, 1, source.calls)
	assert.Contains(t, rdb.data, cacheKey(5))

	got, err = cached.GetDepositRulesWithGracefulDegradation(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
	assert.Equal(t, 1, source.calls, "second call served from cache")
}

func TestCachedClient_DegradedNotCached(t *testing.T) {
	source := &fakeSource{err: ErrServiceDegraded}
	rdb := newFakeRedis()
	cached := NewCachedClient(source, rdb, time.Minute, nopLogger{})

	_, err := cached.GetDepositRulesWithGracefulDegradation(context.Background(), 5)
	assert.ErrorIs(t, err, ErrServiceDegraded)
	assert.Zero(t, rdb.sets)
}

func TestCachedClient_RedisDown(t *testing.T) {
	rules := []domain.DepositRule{{DaysBeforeThreshold: 7, Percentage: 50}}
	source := &fakeSource{rules: rules}
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")
	cached := NewCachedClient(source, rdb, time.Minute, nopLogger{})

	got, err := cached.GetDepositRulesWithGracefulDegradation(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
	assert.Equal(t, 1, source.calls)
}

func TestCachedClient_CorruptedEntry(t *testing.T) {
	rules := []domain.DepositRule{{DaysBeforeThreshold: 7, Percentage: 50}}
	source := &fakeSource{rules: rules}
	rdb := newFakeRedis()
	rdb.data[cacheKey(5)] = "{broken"
	cached := NewCachedClient(source, rdb, time.Minute, nopLogger{})

	got, err := cached.GetDepositRulesWithGracefulDegradation(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
	assert.Equal(t, 1, source.calls)
}
