// Package settings defines user preference records persisted through the
// key-value store.
package settings

import (
	"fmt"

	"leavn/domain/scripture"
)

// Theme selects the reading appearance.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSepia  Theme = "sepia"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark, ThemeSepia:
		return true
	}
	return false
}

// NotificationSettings controls the reminder notifications a user receives.
type NotificationSettings struct {
	DailyVerse      bool `json:"daily_verse"`
	ReadingReminder bool `json:"reading_reminder"`
	ReminderHour    int  `json:"reminder_hour"`
}

// Preferences is the full set of user settings. Created with defaults on
// first load and mutated only through the settings service.
type Preferences struct {
	Theme         Theme                 `json:"theme"`
	FontSize      int                   `json:"font_size"`
	Translation   scripture.Translation `json:"translation"`
	Notifications NotificationSettings  `json:"notifications"`
}

const (
	minFontSize = 10
	maxFontSize = 32
)

// Default returns the preferences a fresh install starts with.
func Default() Preferences {
	return Preferences{
		Theme:       ThemeSystem,
		FontSize:    17,
		Translation: scripture.TranslationWEB,
		Notifications: NotificationSettings{
			DailyVerse:      true,
			ReadingReminder: false,
			ReminderHour:    8,
		},
	}
}

// Validate rejects preference values outside their allowed ranges.
func (p Preferences) Validate() error {
	if !p.Theme.Valid() {
		return fmt.Errorf("unknown theme %q", p.Theme)
	}
	if p.FontSize < minFontSize || p.FontSize > maxFontSize {
		return fmt.Errorf("font size %d out of range [%d, %d]", p.FontSize, minFontSize, maxFontSize)
	}
	if p.Translation == "" {
		return fmt.Errorf("translation must not be empty")
	}
	if p.Notifications.ReminderHour < 0 || p.Notifications.ReminderHour > 23 {
		return fmt.Errorf("reminder hour %d out of range [0, 23]", p.Notifications.ReminderHour)
	}
	return nil
}
