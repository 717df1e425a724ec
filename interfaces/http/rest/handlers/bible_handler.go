package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"leavn/application/ports"
	"leavn/domain/scripture"
	"leavn/pkg/common"
	apperrors "leavn/pkg/errors"
	"leavn/pkg/observability"
)

// BibleHandler serves passage retrieval and search.
type BibleHandler struct {
	service   ports.BibleService
	collector *observability.Collector
	errors    *apperrors.ErrorHandler
}

// NewBibleHandler creates a bible handler.
func NewBibleHandler(
	service ports.BibleService,
	collector *observability.Collector,
	logger *zap.Logger,
) *BibleHandler {
	return &BibleHandler{
		service:   service,
		collector: collector,
		errors:    apperrors.NewErrorHandler(logger),
	}
}

// GetPassage handles GET /bible/passage?book=&chapter=&verse=&end_verse=
func (h *BibleHandler) GetPassage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	chapter, _ := strconv.Atoi(query.Get("chapter"))
	verse, _ := strconv.Atoi(query.Get("verse"))
	endVerse, _ := strconv.Atoi(query.Get("end_verse"))

	ref := scripture.Reference{
		Book:     query.Get("book"),
		Chapter:  chapter,
		Verse:    verse,
		EndVerse: endVerse,
	}

	passage, err := h.service.GetPassage(r.Context(), ref)
	if err != nil {
		h.collector.PassageLookups.WithLabelValues("error").Inc()
		h.errors.Handle(w, r, err)
		return
	}
	h.collector.PassageLookups.WithLabelValues("ok").Inc()
	common.RespondJSON(w, http.StatusOK, passage)
}

// GetChapter handles GET /bible/chapters/{book}/{chapter}
func (h *BibleHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	book := chi.URLParam(r, "book")
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil || chapter < 1 {
		h.errors.Handle(w, r, apperrors.NewValidationError("chapter must be a positive integer"))
		return
	}

	verses, err := h.service.GetChapter(r.Context(), book, chapter)
	if err != nil {
		h.collector.PassageLookups.WithLabelValues("error").Inc()
		h.errors.Handle(w, r, err)
		return
	}
	h.collector.PassageLookups.WithLabelValues("ok").Inc()
	common.RespondJSON(w, http.StatusOK, map[string]any{
		"book":        book,
		"chapter":     chapter,
		"translation": h.service.Translation(),
		"verses":      verses,
	})
}

// Search handles GET /bible/search?q=&limit=
func (h *BibleHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	verses, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	h.collector.SearchQueries.Inc()
	common.RespondJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": verses,
	})
}
