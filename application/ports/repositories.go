// Package ports defines the interfaces the application layer depends on.
// Concrete implementations live under infrastructure and are bound to
// capabilities in the service container at configuration time.
package ports

import (
	"context"
	"errors"

	"leavn/domain/situations"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// SituationRepository provides read access to the life-situation catalog.
// The shipped implementation is an in-memory seed; the interface takes a
// context so a networked or persisted catalog can replace it without
// touching call sites.
type SituationRepository interface {
	// All returns every situation in catalog order.
	All(ctx context.Context) ([]situations.LifeSituation, error)

	// ByID returns the situation with the given ID, or a not-found error.
	ByID(ctx context.Context, id string) (situations.LifeSituation, error)

	// ByEmotion returns the situations tagged with the given state,
	// preserving catalog order. An empty result is not an error.
	ByEmotion(ctx context.Context, emotion situations.EmotionalState) ([]situations.LifeSituation, error)
}

// KeyValueStore is the generic persistence collaborator used for settings
// and favorites. Values are opaque byte slices; callers own the encoding.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
