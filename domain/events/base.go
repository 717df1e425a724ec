// Package events defines the product events the application reports to the
// analytics pipeline. Events describe something that already happened.
package events

import "time"

// Event is the base interface for all analytics events
type Event interface {
	Name() string
	OccurredAt() time.Time
	Properties() map[string]any
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventName string    `json:"event_name"`
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) Name() string          { return e.EventName }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// SituationViewed is raised when a user opens a life situation
type SituationViewed struct {
	BaseEvent
	SituationID string `json:"situation_id"`
	UserID      string `json:"user_id"`
}

// NewSituationViewed creates a SituationViewed event
func NewSituationViewed(situationID, userID string) SituationViewed {
	return SituationViewed{
		BaseEvent: BaseEvent{
			EventName: "situation_viewed",
			Timestamp: time.Now().UTC(),
		},
		SituationID: situationID,
		UserID:      userID,
	}
}

func (e SituationViewed) Properties() map[string]any {
	return map[string]any{
		"situation_id": e.SituationID,
		"user_id":      e.UserID,
	}
}

// FavoriteToggled is raised when a user favorites or unfavorites a situation
type FavoriteToggled struct {
	BaseEvent
	SituationID string `json:"situation_id"`
	UserID      string `json:"user_id"`
	Favorited   bool   `json:"favorited"`
}

// NewFavoriteToggled creates a FavoriteToggled event
func NewFavoriteToggled(situationID, userID string, favorited bool) FavoriteToggled {
	return FavoriteToggled{
		BaseEvent: BaseEvent{
			EventName: "favorite_toggled",
			Timestamp: time.Now().UTC(),
		},
		SituationID: situationID,
		UserID:      userID,
		Favorited:   favorited,
	}
}

func (e FavoriteToggled) Properties() map[string]any {
	return map[string]any{
		"situation_id": e.SituationID,
		"user_id":      e.UserID,
		"favorited":    e.Favorited,
	}
}

// SettingsUpdated is raised when a user replaces their preferences
type SettingsUpdated struct {
	BaseEvent
	UserID      string `json:"user_id"`
	Theme       string `json:"theme"`
	Translation string `json:"translation"`
}

// NewSettingsUpdated creates a SettingsUpdated event
func NewSettingsUpdated(userID, theme, translation string) SettingsUpdated {
	return SettingsUpdated{
		BaseEvent: BaseEvent{
			EventName: "settings_updated",
			Timestamp: time.Now().UTC(),
		},
		UserID:      userID,
		Theme:       theme,
		Translation: translation,
	}
}

func (e SettingsUpdated) Properties() map[string]any {
	return map[string]any{
		"user_id":     e.UserID,
		"theme":       e.Theme,
		"translation": e.Translation,
	}
}
