package throttle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCounter struct {
	values map[string]int64
	ttl    map[string]time.Duration
	err    error
}

func newMemCounter() *memCounter {
	return &memCounter{values: map[string]int64{}, ttl: map[string]time.Duration{}}
}

func (m *memCounter) Get(_ context.Context, key string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.values[key], nil
}

func (m *memCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.values[key]++
	if m.values[key] == 1 {
		m.ttl[key] = window
	}
	return m.values[key], nil
}

func (m *memCounter) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	delete(m.ttl, key)
	return nil
}

func TestThrottle_LocksAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	store := newMemCounter()
	th := New(store, 3, 15*time.Minute)

	for i := 0; i < 2; i++ {
		require.NoError(t, th.Fail(ctx, "carlos@barbearia.com"))
	}
	locked, err := th.Locked(ctx, "carlos@barbearia.com")
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, th.Fail(ctx, " Carlos@Barbearia.com "))
	locked, err = th.Locked(ctx, "carlos@barbearia.com")
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 15*time.Minute, store.ttl["login-fail:carlos@barbearia.com"])
}

func TestThrottle_ResetClearsCounter(t *testing.T) {
	ctx := context.Background()
	th := New(newMemCounter(), 1, time.Minute)

	require.NoError(t, th.Fail(ctx, "a@b.com"))
	require.NoError(t, th.Reset(ctx, "a@b.com"))

	locked, err := th.Locked(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestThrottle_StoreError(t *testing.T) {
	store := newMemCounter()
	store.err = errors.New("redis down")

	_, err := New(store, 1, time.Minute).Locked(context.Background(), "a@b.com")
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var th LoginThrottle = Noop{}
	locked, err := th.Locked(context.Background(), "x")
	assert.NoError(t, err)
	assert.False(t, locked)
}
