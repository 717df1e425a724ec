package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"leavn/application/ports"
	"leavn/domain/events"
	"leavn/domain/settings"
)

// SettingsService loads and stores user preferences through the key-value
// store. A user with no stored record gets the defaults.
type SettingsService struct {
	store     ports.KeyValueStore
	analytics ports.Analytics
	logger    *zap.Logger
}

// NewSettingsService creates the settings use case.
func NewSettingsService(store ports.KeyValueStore, analytics ports.Analytics, logger *zap.Logger) *SettingsService {
	return &SettingsService{store: store, analytics: analytics, logger: logger}
}

// Get returns the user's preferences, falling back to defaults when no
// record exists or the stored record cannot be decoded.
func (s *SettingsService) Get(ctx context.Context, userID string) (settings.Preferences, error) {
	raw, err := s.store.Get(ctx, settingsKey(userID))
	if errors.Is(err, ports.ErrKeyNotFound) {
		return settings.Default(), nil
	}
	if err != nil {
		return settings.Preferences{}, fmt.Errorf("loading settings: %w", err)
	}

	var prefs settings.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		s.logger.Warn("discarding corrupt settings record",
			zap.String("user_id", userID), zap.Error(err))
		return settings.Default(), nil
	}
	return prefs, nil
}

// Update validates and persists the user's preferences.
func (s *SettingsService) Update(ctx context.Context, userID string, prefs settings.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	encoded, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.store.Set(ctx, settingsKey(userID), encoded); err != nil {
		return fmt.Errorf("persisting settings: %w", err)
	}
	s.analytics.Track(ctx, events.NewSettingsUpdated(userID, string(prefs.Theme), string(prefs.Translation)))
	return nil
}

func settingsKey(userID string) string {
	return "settings:" + userID
}
