package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"leavn/application/ports"
	"leavn/domain/events"
	"leavn/domain/scripture"
	"leavn/domain/situations"
)

// stubRepo serves a fixed catalog.
type stubRepo struct {
	catalog []situations.LifeSituation
}

func (r *stubRepo) All(ctx context.Context) ([]situations.LifeSituation, error) {
	return append([]situations.LifeSituation(nil), r.catalog...), nil
}

func (r *stubRepo) ByID(ctx context.Context, id string) (situations.LifeSituation, error) {
	for _, s := range r.catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return situations.LifeSituation{}, fmt.Errorf("situation %s not found", id)
}

func (r *stubRepo) ByEmotion(ctx context.Context, e situations.EmotionalState) ([]situations.LifeSituation, error) {
	var out []situations.LifeSituation
	for _, s := range r.catalog {
		if s.MatchesEmotion(e) {
			out = append(out, s)
		}
	}
	return out, nil
}

// mapStore is an in-memory KeyValueStore for tests.
type mapStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (s *mapStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return value, nil
}

func (s *mapStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *mapStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *mapStore) Close() error { return nil }

// recordingAnalytics captures tracked events.
type recordingAnalytics struct {
	mu     sync.Mutex
	events []events.Event
}

func (a *recordingAnalytics) Track(ctx context.Context, event events.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAnalytics) names() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Name())
	}
	return out
}

func testCatalog() []situations.LifeSituation {
	return []situations.LifeSituation{
		{
			ID:       "anxiety-at-work",
			Title:    "Anxiety at Work",
			Category: situations.CategoryCareer,
			Emotions: []situations.EmotionalState{situations.EmotionAnxious, situations.EmotionFearful},
			Scriptures: []scripture.Reference{
				scripture.NewRangeReference("Philippians", 4, 6, 7),
			},
		},
		{
			ID:       "grief-and-loss",
			Title:    "Grief and Loss",
			Category: situations.CategoryEmotional,
			Emotions: []situations.EmotionalState{situations.EmotionGrieving},
			Scriptures: []scripture.Reference{
				scripture.NewReference("Psalm", 34, 18),
			},
		},
		{
			ID:       "joy-and-blessings",
			Title:    "Joy and Blessings",
			Category: situations.CategorySpiritual,
			Emotions: []situations.EmotionalState{situations.EmotionJoyful, situations.EmotionGrateful},
			Scriptures: []scripture.Reference{
				scripture.NewReference("Psalm", 118, 24),
			},
		},
	}
}

func newTestService() (*SituationService, *recordingAnalytics) {
	tracker := &recordingAnalytics{}
	svc := NewSituationService(&stubRepo{catalog: testCatalog()}, newMapStore(), tracker, zap.NewNop())
	return svc, tracker
}

func TestGetSituationsAll(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	all, err := svc.GetSituations(ctx, "user-1", Filter{Kind: FilterAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// An empty kind means all.
	unfiltered, err := svc.GetSituations(ctx, "user-1", Filter{})
	require.NoError(t, err)
	assert.Equal(t, all, unfiltered)

	for _, s := range all {
		assert.NotEmpty(t, s.Scriptures, "situation %s must carry scripture", s.ID)
	}
}

func TestGetSituationsByEmotion(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	matched, err := svc.GetSituations(ctx, "user-1", Filter{Kind: FilterEmotion, Emotion: situations.EmotionAnxious})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "anxiety-at-work", matched[0].ID)

	// Filtering is read-only: the same query returns the same result.
	again, err := svc.GetSituations(ctx, "user-1", Filter{Kind: FilterEmotion, Emotion: situations.EmotionAnxious})
	require.NoError(t, err)
	assert.Equal(t, matched, again)

	_, err = svc.GetSituations(ctx, "user-1", Filter{Kind: FilterEmotion, Emotion: "melancholy"})
	assert.Error(t, err)
}

func TestGetSituationsUnknownFilter(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetSituations(context.Background(), "user-1", Filter{Kind: "starred"})
	assert.Error(t, err)
}

func TestRecordViewed(t *testing.T) {
	svc, tracker := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RecordViewed(ctx, "user-1", "grief-and-loss"))
	require.NoError(t, svc.RecordViewed(ctx, "user-1", "anxiety-at-work"))

	viewed := svc.RecentlyViewed(ctx, "user-1")
	assert.Equal(t, []string{"anxiety-at-work", "grief-and-loss"}, viewed, "newest first")
	assert.Equal(t, []string{"situation_viewed", "situation_viewed"}, tracker.names())

	// Unknown IDs are rejected and leave no trace.
	assert.Error(t, svc.RecordViewed(ctx, "user-1", "no-such-situation"))
	assert.Len(t, svc.RecentlyViewed(ctx, "user-1"), 2)
}

func TestRecordViewedEvictsOldest(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ids := []string{"anxiety-at-work", "grief-and-loss", "joy-and-blessings"}
	for i := 0; i < 12; i++ {
		require.NoError(t, svc.RecordViewed(ctx, "user-1", ids[i%len(ids)]))
	}

	viewed := svc.RecentlyViewed(ctx, "user-1")
	assert.Len(t, viewed, 10)
	assert.Equal(t, "joy-and-blessings", viewed[0], "most recent view at the head")
}

func TestRecentsAreScopedPerUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RecordViewed(ctx, "user-1", "anxiety-at-work"))

	assert.Empty(t, svc.RecentlyViewed(ctx, "user-2"))
}

func TestToggleFavorite(t *testing.T) {
	svc, tracker := newTestService()
	ctx := context.Background()

	favorited, err := svc.ToggleFavorite(ctx, "user-1", "anxiety-at-work")
	require.NoError(t, err)
	assert.True(t, favorited)

	isFav, err := svc.IsFavorite(ctx, "user-1", "anxiety-at-work")
	require.NoError(t, err)
	assert.True(t, isFav)

	// Toggling twice restores the original state.
	favorited, err = svc.ToggleFavorite(ctx, "user-1", "anxiety-at-work")
	require.NoError(t, err)
	assert.False(t, favorited)

	isFav, err = svc.IsFavorite(ctx, "user-1", "anxiety-at-work")
	require.NoError(t, err)
	assert.False(t, isFav)

	assert.Equal(t, []string{"favorite_toggled", "favorite_toggled"}, tracker.names())

	_, err = svc.ToggleFavorite(ctx, "user-1", "no-such-situation")
	assert.Error(t, err)
}

func TestFavoritesFilter(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, "user-1", "grief-and-loss")
	require.NoError(t, err)
	_, err = svc.ToggleFavorite(ctx, "user-1", "joy-and-blessings")
	require.NoError(t, err)

	favorites, err := svc.GetSituations(ctx, "user-1", Filter{Kind: FilterFavorites})
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "grief-and-loss", favorites[0].ID)
	assert.Equal(t, "joy-and-blessings", favorites[1].ID)

	// Another user's favorites are untouched.
	other, err := svc.GetSituations(ctx, "user-2", Filter{Kind: FilterFavorites})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRecentFilterDeduplicates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RecordViewed(ctx, "user-1", "anxiety-at-work"))
	require.NoError(t, svc.RecordViewed(ctx, "user-1", "grief-and-loss"))
	require.NoError(t, svc.RecordViewed(ctx, "user-1", "anxiety-at-work"))

	recent, err := svc.GetSituations(ctx, "user-1", Filter{Kind: FilterRecent})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "anxiety-at-work", recent[0].ID)
	assert.Equal(t, "grief-and-loss", recent[1].ID)
}

func TestFavoritesSurviveCorruptRecord(t *testing.T) {
	store := newMapStore()
	tracker := &recordingAnalytics{}
	svc := NewSituationService(&stubRepo{catalog: testCatalog()}, store, tracker, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "favorites:user-1", []byte("{not json")))

	isFav, err := svc.IsFavorite(ctx, "user-1", "anxiety-at-work")
	require.NoError(t, err)
	assert.False(t, isFav, "corrupt record reads as empty favorites")

	favorited, err := svc.ToggleFavorite(ctx, "user-1", "anxiety-at-work")
	require.NoError(t, err)
	assert.True(t, favorited)
}
