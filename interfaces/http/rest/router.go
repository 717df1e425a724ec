// Package rest wires the HTTP surface: router, middleware stack, and
// endpoint registration.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"leavn/application/ports"
	"leavn/application/services"
	"leavn/infrastructure/config"
	"leavn/interfaces/http/rest/handlers"
	"leavn/interfaces/http/rest/middleware"
	"leavn/pkg/auth"
	"leavn/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	situationSvc *services.SituationService
	settingsSvc  *services.SettingsService
	bibleSvc     ports.BibleService
	collector    *observability.Collector
	cfg          *config.Config
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	situationSvc *services.SituationService,
	settingsSvc *services.SettingsService,
	bibleSvc ports.BibleService,
	collector *observability.Collector,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		situationSvc: situationSvc,
		settingsSvc:  settingsSvc,
		bibleSvc:     bibleSvc,
		collector:    collector,
		cfg:          cfg,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.collector))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.leavn.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health and operational endpoints
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.collector.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.authOptions()))

		situationHandler := handlers.NewSituationHandler(rt.situationSvc, rt.collector, rt.logger)
		r.Get("/emotions", situationHandler.ListEmotions)
		r.Route("/situations", func(r chi.Router) {
			r.Get("/", situationHandler.ListSituations)
			r.Get("/{situationID}", situationHandler.GetSituation)
			r.Post("/{situationID}/viewed", situationHandler.MarkViewed)
			r.Post("/{situationID}/favorite", situationHandler.ToggleFavorite)
		})

		bibleHandler := handlers.NewBibleHandler(rt.bibleSvc, rt.collector, rt.logger)
		r.Route("/bible", func(r chi.Router) {
			r.Get("/passage", bibleHandler.GetPassage)
			r.Get("/chapters/{book}/{chapter}", bibleHandler.GetChapter)
			r.Get("/search", bibleHandler.Search)
		})

		settingsHandler := handlers.NewSettingsHandler(rt.settingsSvc, rt.logger)
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.GetSettings)
			r.Put("/", settingsHandler.UpdateSettings)
		})
	})

	return router
}

func (rt *Router) authOptions() middleware.AuthOptions {
	opts := middleware.AuthOptions{
		AllowAnonymous: rt.cfg.IsDevelopment(),
		Limiter:        auth.NewTokenBucketLimiter(100, time.Minute/100),
		Logger:         rt.logger,
	}
	if rt.cfg.JWTSecret != "" {
		validator, err := auth.NewJWTValidator(auth.JWTConfig{
			SecretKey: rt.cfg.JWTSecret,
			Issuer:    rt.cfg.JWTIssuer,
		})
		if err != nil {
			rt.logger.Error("failed to build jwt validator", zap.Error(err))
		} else {
			opts.Validator = validator
		}
	}
	return opts
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
