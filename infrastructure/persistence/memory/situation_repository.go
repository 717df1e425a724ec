// Package memory provides the in-memory persistence implementations: the
// seeded life-situation catalog and a key-value store used in development
// and tests.
package memory

import (
	"context"

	"leavn/domain/situations"
	apperrors "leavn/pkg/errors"
)

// SituationRepository serves the curated catalog from memory. The catalog
// is fixed at construction; reads are side-effect free and deterministic.
type SituationRepository struct {
	catalog []situations.LifeSituation
	byID    map[string]situations.LifeSituation
}

// NewSituationRepository creates a repository over the shipped seed catalog.
func NewSituationRepository() *SituationRepository {
	return NewSituationRepositoryWith(SeedSituations())
}

// NewSituationRepositoryWith creates a repository over an explicit catalog.
// Useful for tests that need a controlled dataset.
func NewSituationRepositoryWith(catalog []situations.LifeSituation) *SituationRepository {
	byID := make(map[string]situations.LifeSituation, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}
	return &SituationRepository{catalog: catalog, byID: byID}
}

// All returns the full catalog in seed order.
func (r *SituationRepository) All(ctx context.Context) ([]situations.LifeSituation, error) {
	return append([]situations.LifeSituation(nil), r.catalog...), nil
}

// ByID returns a single situation or a not-found error.
func (r *SituationRepository) ByID(ctx context.Context, id string) (situations.LifeSituation, error) {
	s, ok := r.byID[id]
	if !ok {
		return situations.LifeSituation{}, apperrors.NewNotFoundError("situation " + id)
	}
	return s, nil
}

// ByEmotion returns the situations tagged with the given state in seed order.
func (r *SituationRepository) ByEmotion(ctx context.Context, emotion situations.EmotionalState) ([]situations.LifeSituation, error) {
	matched := make([]situations.LifeSituation, 0, len(r.catalog))
	for _, s := range r.catalog {
		if s.MatchesEmotion(emotion) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}
