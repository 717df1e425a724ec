package situations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leavn/domain/scripture"
)

func validSituation() LifeSituation {
	return LifeSituation{
		ID:       "anxiety-at-work",
		Title:    "Anxiety at Work",
		Category: CategoryCareer,
		Emotions: []EmotionalState{EmotionAnxious},
		Scriptures: []scripture.Reference{
			scripture.NewRangeReference("Philippians", 4, 6, 7),
		},
	}
}

func TestLifeSituationValidate(t *testing.T) {
	assert.NoError(t, validSituation().Validate())

	missingID := validSituation()
	missingID.ID = ""
	assert.Error(t, missingID.Validate())

	noScriptures := validSituation()
	noScriptures.Scriptures = nil
	assert.Error(t, noScriptures.Validate(), "a situation must carry at least one reference")

	badCategory := validSituation()
	badCategory.Category = "astrological"
	assert.Error(t, badCategory.Validate())

	badEmotion := validSituation()
	badEmotion.Emotions = []EmotionalState{"melancholy"}
	assert.Error(t, badEmotion.Validate())

	badReference := validSituation()
	badReference.Scriptures = []scripture.Reference{{Book: "Philippians"}}
	assert.Error(t, badReference.Validate())
}

func TestMatchesEmotion(t *testing.T) {
	s := validSituation()
	assert.True(t, s.MatchesEmotion(EmotionAnxious))
	assert.False(t, s.MatchesEmotion(EmotionJoyful))
}
