package container

import (
	"context"

	"go.uber.org/zap"

	"leavn/application/ports"
	"leavn/application/services"
	"leavn/domain/scripture"
	"leavn/infrastructure/analytics"
	"leavn/infrastructure/bible"
	"leavn/infrastructure/config"
	"leavn/infrastructure/persistence/memory"
	"leavn/infrastructure/persistence/sqlite"
	"leavn/pkg/extensions"
)

// Capability names. Every name the process resolves is listed here and
// checked by Verify before the server starts taking traffic.
const (
	CapabilityKeyValueStore    = "keyvalue"
	CapabilityAnalytics        = "analytics"
	CapabilitySituationRepo    = "situations.repository"
	CapabilitySituationService = "situations.service"
	CapabilitySettingsService  = "settings.service"
	CapabilityBibleService     = "bible.service"
)

// AllCapabilities lists every capability the application wires.
func AllCapabilities() []string {
	return []string{
		CapabilityKeyValueStore,
		CapabilityAnalytics,
		CapabilitySituationRepo,
		CapabilitySituationService,
		CapabilitySettingsService,
		CapabilityBibleService,
	}
}

// Configure builds the container and performs every registration. Real or
// fallback implementations are chosen here, from configuration, so tests
// and deployments select implementations without conditional compilation.
// Construction stays lazy: nothing is instantiated until first resolution.
func Configure(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := New(logger)

	c.Register(CapabilityKeyValueStore, ScopeSingleton, func(c *Container) (any, error) {
		if cfg.DatabasePath == "" {
			logger.Info("no database path configured, using in-memory store")
			return memory.NewKeyValueStore(), nil
		}
		return sqlite.Open(cfg.DatabasePath)
	})

	c.Register(CapabilityAnalytics, ScopeSingleton, func(c *Container) (any, error) {
		if !cfg.EnableAnalytics {
			return analytics.NewNoop(), nil
		}
		return analytics.NewLogTracker(logger), nil
	})

	c.Register(CapabilitySituationRepo, ScopeSingleton, func(c *Container) (any, error) {
		return memory.NewSituationRepository(), nil
	})

	c.Register(CapabilityBibleService, ScopeSingleton, func(c *Container) (any, error) {
		if cfg.BibleAPIURL == "" {
			return bible.NewMemoryService(), nil
		}
		hooks := extensions.NewHookManager()
		hooks.Register(extensions.HookCacheMiss, func(ctx context.Context, data interface{}) error {
			if d, ok := data.(extensions.HookData); ok {
				logger.Debug("passage cache miss", zap.String("key", d.Key))
			}
			return nil
		})
		return bible.NewClient(bible.ClientOptions{
			BaseURL:     cfg.BibleAPIURL,
			Translation: scripture.Translation(cfg.BibleTranslation),
			Timeout:     cfg.BibleAPITimeout,
			CacheTTL:    cfg.BibleCacheTTL,
			Hooks:       hooks,
		}, logger), nil
	})

	c.Register(CapabilitySituationService, ScopeSingleton, func(c *Container) (any, error) {
		repo, err := Resolve[ports.SituationRepository](c, CapabilitySituationRepo)
		if err != nil {
			return nil, err
		}
		store, err := Resolve[ports.KeyValueStore](c, CapabilityKeyValueStore)
		if err != nil {
			return nil, err
		}
		tracker, err := Resolve[ports.Analytics](c, CapabilityAnalytics)
		if err != nil {
			return nil, err
		}
		return services.NewSituationService(repo, store, tracker, logger), nil
	})

	c.Register(CapabilitySettingsService, ScopeSingleton, func(c *Container) (any, error) {
		store, err := Resolve[ports.KeyValueStore](c, CapabilityKeyValueStore)
		if err != nil {
			return nil, err
		}
		tracker, err := Resolve[ports.Analytics](c, CapabilityAnalytics)
		if err != nil {
			return nil, err
		}
		return services.NewSettingsService(store, tracker, logger), nil
	})

	if err := c.Verify(AllCapabilities()...); err != nil {
		return nil, err
	}
	return c, nil
}
