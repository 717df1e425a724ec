package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "leavn.db", cfg.DatabasePath)
	assert.Empty(t, cfg.BibleAPIURL, "embedded translation by default")
	assert.Equal(t, 10*time.Second, cfg.BibleAPITimeout)
	assert.Equal(t, time.Hour, cfg.BibleCacheTTL)
	assert.Equal(t, "WEB", cfg.BibleTranslation)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableAnalytics)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("BIBLE_API_URL", "https://bible-api.com")
	t.Setenv("BIBLE_API_TIMEOUT", "5s")
	t.Setenv("ENABLE_ANALYTICS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "https://bible-api.com", cfg.BibleAPIURL)
	assert.Equal(t, 5*time.Second, cfg.BibleAPITimeout)
	assert.False(t, cfg.EnableAnalytics)
}

func TestProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "super-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
