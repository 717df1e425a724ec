package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leavn/domain/scripture"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := Default()

	assert.NoError(t, prefs.Validate())
	assert.Equal(t, ThemeSystem, prefs.Theme)
	assert.Equal(t, 17, prefs.FontSize)
	assert.Equal(t, scripture.TranslationWEB, prefs.Translation)
	assert.True(t, prefs.Notifications.DailyVerse)
	assert.Equal(t, 8, prefs.Notifications.ReminderHour)
}

func TestPreferencesValidate(t *testing.T) {
	badTheme := Default()
	badTheme.Theme = "neon"
	assert.Error(t, badTheme.Validate())

	tooSmall := Default()
	tooSmall.FontSize = 9
	assert.Error(t, tooSmall.Validate())

	tooLarge := Default()
	tooLarge.FontSize = 33
	assert.Error(t, tooLarge.Validate())

	noTranslation := Default()
	noTranslation.Translation = ""
	assert.Error(t, noTranslation.Validate())

	badHour := Default()
	badHour.Notifications.ReminderHour = 24
	assert.Error(t, badHour.Validate())
}
