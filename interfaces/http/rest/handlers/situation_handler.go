// Package handlers implements the REST endpoints consumed by the app's
// clients.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"leavn/application/services"
	"leavn/domain/situations"
	"leavn/pkg/auth"
	"leavn/pkg/common"
	apperrors "leavn/pkg/errors"
	"leavn/pkg/observability"
)

// SituationHandler serves the life-situations endpoints.
type SituationHandler struct {
	service   *services.SituationService
	collector *observability.Collector
	errors    *apperrors.ErrorHandler
	logger    *zap.Logger
}

// NewSituationHandler creates a situation handler.
func NewSituationHandler(
	service *services.SituationService,
	collector *observability.Collector,
	logger *zap.Logger,
) *SituationHandler {
	return &SituationHandler{
		service:   service,
		collector: collector,
		errors:    apperrors.NewErrorHandler(logger),
		logger:    logger,
	}
}

// emotionDTO is the presentation shape for an emotional state.
type emotionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// situationDetail decorates a situation with the caller's favorite state.
type situationDetail struct {
	situations.LifeSituation
	Favorite bool `json:"favorite"`
}

// ListEmotions handles GET /emotions
func (h *SituationHandler) ListEmotions(w http.ResponseWriter, r *http.Request) {
	all := situations.AllEmotions()
	dtos := make([]emotionDTO, 0, len(all))
	for _, e := range all {
		dtos = append(dtos, emotionDTO{
			ID:    string(e),
			Label: e.Label(),
			Color: e.Color(),
			Icon:  e.Icon(),
		})
	}
	common.RespondJSON(w, http.StatusOK, dtos)
}

// ListSituations handles GET /situations with optional filter and emotion
// query parameters.
func (h *SituationHandler) ListSituations(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	filter := services.Filter{Kind: services.FilterAll}
	if kind := r.URL.Query().Get("filter"); kind != "" {
		filter.Kind = services.FilterKind(kind)
	}
	if raw := r.URL.Query().Get("emotion"); raw != "" {
		emotion, err := situations.ParseEmotionalState(raw)
		if err != nil {
			h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
			return
		}
		filter.Kind = services.FilterEmotion
		filter.Emotion = emotion
	}

	result, err := h.service.GetSituations(r.Context(), userID, filter)
	if err != nil {
		if apperrors.GetAppError(err) == nil {
			err = apperrors.NewValidationError(err.Error())
		}
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetSituation handles GET /situations/{situationID}
func (h *SituationHandler) GetSituation(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	situationID := chi.URLParam(r, "situationID")

	situation, err := h.service.GetSituation(r.Context(), situationID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	favorite, err := h.service.IsFavorite(r.Context(), userID, situationID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, situationDetail{LifeSituation: situation, Favorite: favorite})
}

// MarkViewed handles POST /situations/{situationID}/viewed
func (h *SituationHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	situationID := chi.URLParam(r, "situationID")

	if err := h.service.RecordViewed(r.Context(), userID, situationID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	h.collector.SituationsViewed.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite handles POST /situations/{situationID}/favorite
func (h *SituationHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	situationID := chi.URLParam(r, "situationID")

	favorited, err := h.service.ToggleFavorite(r.Context(), userID, situationID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	h.collector.FavoritesToggled.Inc()
	common.RespondJSON(w, http.StatusOK, map[string]bool{"favorite": favorited})
}
