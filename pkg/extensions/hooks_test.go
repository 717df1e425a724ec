package extensions

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookManagerExecute(t *testing.T) {
	manager := NewHookManager()
	var calls int
	manager.Register(HookCacheMiss, func(ctx context.Context, data interface{}) error {
		calls++
		d, ok := data.(HookData)
		require.True(t, ok)
		assert.Equal(t, "Psalm 23:1", d.Key)
		return nil
	})

	err := manager.Execute(context.Background(), HookCacheMiss, HookData{Key: "Psalm 23:1"})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestHookManagerExecuteStopsOnError(t *testing.T) {
	manager := NewHookManager()
	boom := errors.New("hook failed")
	var secondRan bool
	manager.Register(HookFetchFailed, func(ctx context.Context, data interface{}) error {
		return boom
	})
	manager.Register(HookFetchFailed, func(ctx context.Context, data interface{}) error {
		secondRan = true
		return nil
	})

	err := manager.Execute(context.Background(), HookFetchFailed, HookData{})

	assert.ErrorIs(t, err, boom)
	assert.False(t, secondRan)
}

func TestHookManagerExecuteAsync(t *testing.T) {
	manager := NewHookManager()
	var calls atomic.Int32
	manager.Register(HookCacheHit, func(ctx context.Context, data interface{}) error {
		calls.Add(1)
		return nil
	})

	manager.ExecuteAsync(context.Background(), HookCacheHit, HookData{Key: "k"})

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestHookManagerClear(t *testing.T) {
	manager := NewHookManager()
	var calls int
	manager.Register(HookCacheMiss, func(ctx context.Context, data interface{}) error {
		calls++
		return nil
	})

	manager.Clear(HookCacheMiss)
	require.NoError(t, manager.Execute(context.Background(), HookCacheMiss, HookData{}))
	assert.Zero(t, calls)

	manager.Register(HookCacheHit, func(ctx context.Context, data interface{}) error {
		calls++
		return nil
	})
	manager.ClearAll()
	require.NoError(t, manager.Execute(context.Background(), HookCacheHit, HookData{}))
	assert.Zero(t, calls)
}

func TestExecuteWithNoHooks(t *testing.T) {
	manager := NewHookManager()
	assert.NoError(t, manager.Execute(context.Background(), HookFetchSucceeded, HookData{}))
}
