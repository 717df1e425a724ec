package bible

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leavn/domain/scripture"
	apperrors "leavn/pkg/errors"
)

func TestMemoryGetPassageSingleVerse(t *testing.T) {
	svc := NewMemoryService()

	passage, err := svc.GetPassage(context.Background(), scripture.NewReference("John", 3, 16))

	require.NoError(t, err)
	require.Len(t, passage.Verses, 1)
	assert.Equal(t, scripture.TranslationWEB, passage.Translation)
	assert.Contains(t, passage.Text(), "God so loved the world")
}

func TestMemoryGetPassageRange(t *testing.T) {
	svc := NewMemoryService()

	passage, err := svc.GetPassage(context.Background(), scripture.NewRangeReference("Philippians", 4, 6, 7))

	require.NoError(t, err)
	require.Len(t, passage.Verses, 2)
	assert.Equal(t, 6, passage.Verses[0].Number)
	assert.Equal(t, 7, passage.Verses[1].Number)
}

func TestMemoryGetPassageBookCaseInsensitive(t *testing.T) {
	svc := NewMemoryService()

	passage, err := svc.GetPassage(context.Background(), scripture.NewReference("psalm", 23, 1))

	require.NoError(t, err)
	require.Len(t, passage.Verses, 1)
}

func TestMemoryGetPassageErrors(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	_, err := svc.GetPassage(ctx, scripture.Reference{Book: "John"})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	_, err = svc.GetPassage(ctx, scripture.NewReference("Obadiah", 1, 1))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMemoryGetChapter(t *testing.T) {
	svc := NewMemoryService()

	verses, err := svc.GetChapter(context.Background(), "Psalm", 23)

	require.NoError(t, err)
	require.NotEmpty(t, verses)
	for i := 1; i < len(verses); i++ {
		assert.Less(t, verses[i-1].Number, verses[i].Number, "verses must be ordered")
	}

	_, err = svc.GetChapter(context.Background(), "Obadiah", 1)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMemorySearch(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	matches, err := svc.Search(ctx, "SHEPHERD", 0)
	require.NoError(t, err)
	require.NotEmpty(t, matches, "search should be case insensitive")

	limited, err := svc.Search(ctx, "the", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := svc.Search(ctx, "quaternion", 0)
	require.NoError(t, err)
	assert.Empty(t, none, "no match is not an error")

	_, err = svc.Search(ctx, "   ", 0)
	assert.Error(t, err)
}
