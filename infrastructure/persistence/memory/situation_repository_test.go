package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leavn/domain/situations"
	apperrors "leavn/pkg/errors"
)

func TestSeedCatalogIsValid(t *testing.T) {
	seeded := SeedSituations()
	require.Len(t, seeded, 4)

	seen := make(map[string]bool)
	for _, s := range seeded {
		assert.NoError(t, s.Validate(), s.ID)
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Emotions, "situation %s should be reachable by emotion", s.ID)
	}
}

func TestRepositoryAll(t *testing.T) {
	repo := NewSituationRepository()

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(SeedSituations()))

	// Mutating the returned slice must not affect the catalog.
	all[0].ID = "mutated"
	again, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].ID)
}

func TestRepositoryByID(t *testing.T) {
	repo := NewSituationRepository()

	s, err := repo.ByID(context.Background(), "anxiety-at-work")
	require.NoError(t, err)
	assert.Equal(t, "Anxiety at Work", s.Title)

	_, err = repo.ByID(context.Background(), "no-such-situation")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRepositoryByEmotion(t *testing.T) {
	repo := NewSituationRepository()
	ctx := context.Background()

	anxious, err := repo.ByEmotion(ctx, situations.EmotionAnxious)
	require.NoError(t, err)
	require.NotEmpty(t, anxious)
	for _, s := range anxious {
		assert.True(t, s.MatchesEmotion(situations.EmotionAnxious), s.ID)
	}

	// Peaceful has no seeded situations yet; empty, not an error.
	peaceful, err := repo.ByEmotion(ctx, situations.EmotionPeaceful)
	require.NoError(t, err)
	assert.Empty(t, peaceful)
}
