// Package container implements the runtime service container: a registry
// mapping capability names to factories, with singleton and transient
// scopes. The container is an explicit value handed to the code that needs
// it rather than package-global state, and mock-vs-real selection happens
// when bindings are registered, not at compile time.
package container

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Scope defines the lifetime of a resolved capability.
type Scope string

const (
	// ScopeSingleton caches the first construction for the container's lifetime.
	ScopeSingleton Scope = "singleton"
	// ScopeTransient constructs a new instance on every resolution.
	ScopeTransient Scope = "transient"
)

// Factory produces a concrete instance for a capability. Factories may
// resolve other capabilities from the container they receive.
type Factory func(c *Container) (any, error)

type binding struct {
	scope   Scope
	factory Factory

	// mu guards the cached instance so a singleton is constructed at most
	// once even when first resolved concurrently.
	mu       sync.Mutex
	built    bool
	instance any
}

// Container is the process-wide capability registry. Safe for concurrent use.
type Container struct {
	mu       sync.RWMutex
	bindings map[string]*binding
	logger   *zap.Logger

	// chains tracks in-flight resolutions per goroutine for cycle detection.
	chainMu sync.Mutex
	chains  map[int64]map[string]bool
}

// New creates an empty container. A nil logger falls back to zap.NewNop.
func New(logger *zap.Logger) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Container{
		bindings: make(map[string]*binding, 16),
		logger:   logger,
		chains:   make(map[int64]map[string]bool),
	}
}

// Register binds a factory to a capability name. Re-registration overwrites
// the prior binding (last write wins) and drops its cached instance; because
// two configuration paths binding the same capability is usually a mistake,
// the overwrite is logged at Warn.
func (c *Container) Register(capability string, scope Scope, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.bindings[capability]; exists {
		c.logger.Warn("capability re-registered, previous binding replaced",
			zap.String("capability", capability),
			zap.String("scope", string(scope)),
		)
	}
	c.bindings[capability] = &binding{scope: scope, factory: factory}
}

// Resolve returns the instance bound to a capability. Singletons are
// constructed lazily on first resolution and cached; transients are
// constructed on every call. Resolving an unbound capability returns a
// NotRegisteredError.
func (c *Container) Resolve(capability string) (any, error) {
	c.mu.RLock()
	b, ok := c.bindings[capability]
	c.mu.RUnlock()
	if !ok {
		return nil, &NotRegisteredError{Capability: capability}
	}

	if err := c.startResolving(capability); err != nil {
		return nil, err
	}
	defer c.finishResolving(capability)

	if b.scope == ScopeTransient {
		instance, err := b.factory(c)
		if err != nil {
			return nil, &ConstructionError{Capability: capability, Err: err}
		}
		return instance, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.built {
		return b.instance, nil
	}
	instance, err := b.factory(c)
	if err != nil {
		return nil, &ConstructionError{Capability: capability, Err: err}
	}
	b.instance = instance
	b.built = true
	return instance, nil
}

// MustResolve is Resolve for wiring paths where absence is fatal: it panics
// on any resolution error.
func (c *Container) MustResolve(capability string) any {
	instance, err := c.Resolve(capability)
	if err != nil {
		panic(fmt.Sprintf("container: %v", err))
	}
	return instance
}

// Reset drops every cached singleton instance while keeping the bindings,
// so the next resolution constructs anew. Intended for tests.
func (c *Container) Reset() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, b := range c.bindings {
		b.mu.Lock()
		b.built = false
		b.instance = nil
		b.mu.Unlock()
	}
}

// Registered reports whether a capability has a binding.
func (c *Container) Registered(capability string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[capability]
	return ok
}

// Verify is the startup self-check: it confirms every listed capability is
// bound before first use and returns the first gap found.
func (c *Container) Verify(capabilities ...string) error {
	for _, capability := range capabilities {
		if !c.Registered(capability) {
			return &NotRegisteredError{Capability: capability}
		}
	}
	return nil
}

func (c *Container) startResolving(capability string) error {
	id := goid()
	c.chainMu.Lock()
	defer c.chainMu.Unlock()

	chain := c.chains[id]
	if chain == nil {
		chain = make(map[string]bool, 4)
		c.chains[id] = chain
	}
	if chain[capability] {
		return &CircularDependencyError{Capability: capability}
	}
	chain[capability] = true
	return nil
}

func (c *Container) finishResolving(capability string) {
	id := goid()
	c.chainMu.Lock()
	defer c.chainMu.Unlock()

	chain := c.chains[id]
	if chain == nil {
		return
	}
	delete(chain, capability)
	if len(chain) == 0 {
		delete(c.chains, id)
	}
}

// Resolve is the typed companion to Container.Resolve.
func Resolve[T any](c *Container, capability string) (T, error) {
	var zero T
	instance, err := c.Resolve(capability)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Capability: capability,
			Expected:   fmt.Sprintf("%T", zero),
			Got:        fmt.Sprintf("%T", instance),
		}
	}
	return typed, nil
}

// MustResolve is the typed companion to Container.MustResolve.
func MustResolve[T any](c *Container, capability string) T {
	typed, err := Resolve[T](c, capability)
	if err != nil {
		panic(fmt.Sprintf("container: %v", err))
	}
	return typed
}
