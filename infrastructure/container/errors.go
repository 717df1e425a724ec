package container

import "fmt"

// NotRegisteredError reports resolution of a capability nothing has bound.
// This is a wiring mistake, not a user-facing condition; MustResolve turns
// it into a panic so it surfaces before shipping.
type NotRegisteredError struct {
	Capability string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no binding registered for capability %q", e.Capability)
}

// ConstructionError wraps a factory failure during resolution.
type ConstructionError struct {
	Capability string
	Err        error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing capability %q: %v", e.Capability, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// CircularDependencyError reports a factory that resolves, directly or
// transitively, the capability it is constructing.
type CircularDependencyError struct {
	Capability string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected while resolving capability %q", e.Capability)
}

// TypeMismatchError reports a typed resolution whose binding produced a
// different concrete type.
type TypeMismatchError struct {
	Capability string
	Expected   string
	Got        string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("capability %q resolved to %s, expected %s", e.Capability, e.Got, e.Expected)
}
