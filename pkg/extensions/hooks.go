// Package extensions provides process-local hook points. Deployments attach
// behavior to passage cache and fetch activity without changing call sites.
package extensions

import (
	"context"
	"fmt"
	"sync"
)

// HookPoint represents a point in the application where hooks can be registered
type HookPoint string

const (
	// Passage cache activity
	HookCacheHit  HookPoint = "cache_hit"
	HookCacheMiss HookPoint = "cache_miss"

	// Remote fetch activity
	HookFetchSucceeded HookPoint = "fetch_succeeded"
	HookFetchFailed    HookPoint = "fetch_failed"
)

// Hook represents a function that can be executed at a hook point
type Hook func(ctx context.Context, data interface{}) error

// HookData represents data passed to hooks
type HookData struct {
	Key      string                 `json:"key"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// HookManager manages hooks for extension points
type HookManager struct {
	hooks map[HookPoint][]Hook
	mu    sync.RWMutex
}

// NewHookManager creates a new hook manager
func NewHookManager() *HookManager {
	return &HookManager{
		hooks: make(map[HookPoint][]Hook),
	}
}

// Register registers a hook for a specific hook point
func (m *HookManager) Register(point HookPoint, hook Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hooks[point] = append(m.hooks[point], hook)
}

// Execute executes all hooks for a specific hook point
func (m *HookManager) Execute(ctx context.Context, point HookPoint, data interface{}) error {
	m.mu.RLock()
	hooks := m.hooks[point]
	m.mu.RUnlock()

	for i, hook := range hooks {
		if err := hook(ctx, data); err != nil {
			return fmt.Errorf("hook %d at %s failed: %w", i, point, err)
		}
	}

	return nil
}

// ExecuteAsync executes hooks asynchronously
func (m *HookManager) ExecuteAsync(ctx context.Context, point HookPoint, data interface{}) {
	m.mu.RLock()
	hooks := m.hooks[point]
	m.mu.RUnlock()

	for _, hook := range hooks {
		go func(h Hook) {
			_ = h(ctx, data) // Ignore errors in async execution
		}(hook)
	}
}

// Clear removes all hooks for a specific hook point
func (m *HookManager) Clear(point HookPoint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.hooks, point)
}

// ClearAll removes all registered hooks
func (m *HookManager) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hooks = make(map[HookPoint][]Hook)
}
