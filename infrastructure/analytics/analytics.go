// Package analytics provides the Analytics capability implementations.
package analytics

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"leavn/domain/events"
)

// LogTracker emits analytics events to the structured log. Each event gets
// a unique ID so downstream pipelines can deduplicate.
type LogTracker struct {
	logger *zap.Logger
}

// NewLogTracker creates a log-backed tracker.
func NewLogTracker(logger *zap.Logger) *LogTracker {
	return &LogTracker{logger: logger}
}

// Track records an event. It never fails the caller.
func (t *LogTracker) Track(ctx context.Context, event events.Event) {
	properties := event.Properties()
	fields := make([]zap.Field, 0, len(properties)+3)
	fields = append(fields,
		zap.String("event_id", uuid.New().String()),
		zap.String("event", event.Name()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	for key, value := range properties {
		fields = append(fields, zap.Any(key, value))
	}
	t.logger.Info("analytics event", fields...)
}

// Noop discards all events. Bound when analytics is disabled.
type Noop struct{}

// NewNoop creates a discarding tracker.
func NewNoop() *Noop {
	return &Noop{}
}

// Track discards the event.
func (t *Noop) Track(ctx context.Context, event events.Event) {}
