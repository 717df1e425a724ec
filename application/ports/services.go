package ports

import (
	"context"

	"leavn/domain/events"
	"leavn/domain/scripture"
)

// BibleService retrieves Bible text. Implementations: an embedded in-memory
// translation and a remote API client, chosen at configuration time.
type BibleService interface {
	// GetPassage resolves a reference (single verse or range) to its text.
	GetPassage(ctx context.Context, ref scripture.Reference) (scripture.Passage, error)

	// GetChapter returns all available verses of a chapter in order.
	GetChapter(ctx context.Context, book string, chapter int) ([]scripture.Verse, error)

	// Search returns up to limit verses whose text matches the query.
	// An empty result is not an error.
	Search(ctx context.Context, query string, limit int) ([]scripture.Verse, error)

	// Translation identifies the translation this service serves.
	Translation() scripture.Translation
}

// Analytics records product events. Implementations must be safe for
// concurrent use and must never fail the caller.
type Analytics interface {
	Track(ctx context.Context, event events.Event)
}
