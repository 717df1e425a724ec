// Package services implements the application use cases on top of the
// ports. Services are constructed by the container wiring and used by the
// HTTP handlers.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"leavn/application/ports"
	"leavn/domain/events"
	"leavn/domain/situations"
)

// FilterKind selects which slice of the catalog GetSituations returns.
type FilterKind string

const (
	FilterAll       FilterKind = "all"
	FilterEmotion   FilterKind = "emotion"
	FilterFavorites FilterKind = "favorites"
	FilterRecent    FilterKind = "recent"
)

// Filter describes a GetSituations request. Emotion is only consulted when
// Kind is FilterEmotion.
type Filter struct {
	Kind    FilterKind
	Emotion situations.EmotionalState
}

// recentlyViewedCap bounds the per-user viewed list. Plain FIFO: the newest
// entry sits at the head, the oldest is evicted when full.
const recentlyViewedCap = 10

// SituationService is the life-situations use case: catalog reads filtered
// by emotion, favorites or recency, plus the per-user viewed and favorite
// state. Favorites persist through the key-value store; the recently-viewed
// list is in-memory only.
type SituationService struct {
	repo      ports.SituationRepository
	store     ports.KeyValueStore
	analytics ports.Analytics
	logger    *zap.Logger

	mu      sync.Mutex
	recents map[string][]string
}

// NewSituationService creates the use case with its collaborators.
func NewSituationService(
	repo ports.SituationRepository,
	store ports.KeyValueStore,
	analytics ports.Analytics,
	logger *zap.Logger,
) *SituationService {
	return &SituationService{
		repo:      repo,
		store:     store,
		analytics: analytics,
		logger:    logger,
		recents:   make(map[string][]string),
	}
}

// GetSituations returns the situations matching the filter for the given
// user. A filter that matches nothing yields an empty slice, not an error.
func (s *SituationService) GetSituations(ctx context.Context, userID string, filter Filter) ([]situations.LifeSituation, error) {
	switch filter.Kind {
	case "", FilterAll:
		return s.repo.All(ctx)
	case FilterEmotion:
		if !filter.Emotion.Valid() {
			return nil, fmt.Errorf("invalid emotion filter: %q", filter.Emotion)
		}
		return s.repo.ByEmotion(ctx, filter.Emotion)
	case FilterFavorites:
		ids, err := s.favoriteIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.collect(ctx, ids)
	case FilterRecent:
		s.mu.Lock()
		ids := append([]string(nil), s.recents[userID]...)
		s.mu.Unlock()
		return s.collect(ctx, dedupe(ids))
	default:
		return nil, fmt.Errorf("unknown filter kind: %q", filter.Kind)
	}
}

// GetSituation returns a single situation by ID.
func (s *SituationService) GetSituation(ctx context.Context, id string) (situations.LifeSituation, error) {
	return s.repo.ByID(ctx, id)
}

// RecordViewed notes that the user opened a situation. The list is bounded;
// recording an eleventh view evicts the oldest entry.
func (s *SituationService) RecordViewed(ctx context.Context, userID, situationID string) error {
	if _, err := s.repo.ByID(ctx, situationID); err != nil {
		return err
	}

	s.mu.Lock()
	viewed := s.recents[userID]
	viewed = append([]string{situationID}, viewed...)
	if len(viewed) > recentlyViewedCap {
		viewed = viewed[:recentlyViewedCap]
	}
	s.recents[userID] = viewed
	s.mu.Unlock()

	s.analytics.Track(ctx, events.NewSituationViewed(situationID, userID))
	return nil
}

// RecentlyViewed returns the user's viewed IDs, newest first, duplicates
// preserved as recorded.
func (s *SituationService) RecentlyViewed(ctx context.Context, userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.recents[userID]...)
}

// ToggleFavorite flips the favorite state of a situation for the user and
// returns the new state. Toggling twice restores the original membership.
func (s *SituationService) ToggleFavorite(ctx context.Context, userID, situationID string) (bool, error) {
	if _, err := s.repo.ByID(ctx, situationID); err != nil {
		return false, err
	}

	ids, err := s.favoriteIDs(ctx, userID)
	if err != nil {
		return false, err
	}

	favorited := false
	next := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == situationID {
			continue
		}
		next = append(next, id)
	}
	if len(next) == len(ids) {
		next = append(next, situationID)
		favorited = true
	}

	encoded, err := json.Marshal(next)
	if err != nil {
		return false, fmt.Errorf("encoding favorites: %w", err)
	}
	if err := s.store.Set(ctx, favoritesKey(userID), encoded); err != nil {
		return false, fmt.Errorf("persisting favorites: %w", err)
	}

	s.analytics.Track(ctx, events.NewFavoriteToggled(situationID, userID, favorited))
	return favorited, nil
}

// IsFavorite reports whether the situation is in the user's favorites.
func (s *SituationService) IsFavorite(ctx context.Context, userID, situationID string) (bool, error) {
	ids, err := s.favoriteIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == situationID {
			return true, nil
		}
	}
	return false, nil
}

func (s *SituationService) favoriteIDs(ctx context.Context, userID string) ([]string, error) {
	raw, err := s.store.Get(ctx, favoritesKey(userID))
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Warn("discarding corrupt favorites record",
			zap.String("user_id", userID), zap.Error(err))
		return nil, nil
	}
	return ids, nil
}

// collect resolves IDs to situations, skipping any that have left the
// catalog since they were recorded.
func (s *SituationService) collect(ctx context.Context, ids []string) ([]situations.LifeSituation, error) {
	result := make([]situations.LifeSituation, 0, len(ids))
	for _, id := range ids {
		situation, err := s.repo.ByID(ctx, id)
		if err != nil {
			continue
		}
		result = append(result, situation)
	}
	return result, nil
}

func favoritesKey(userID string) string {
	return "favorites:" + userID
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
