package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"leavn/application/services"
	"leavn/domain/scripture"
	"leavn/domain/settings"
	"leavn/pkg/auth"
	"leavn/pkg/common"
	apperrors "leavn/pkg/errors"
	"leavn/pkg/utils"
)

const maxSettingsBody = 16 * 1024

// SettingsHandler serves user preference reads and writes.
type SettingsHandler struct {
	service *services.SettingsService
	errors  *apperrors.ErrorHandler
}

// NewSettingsHandler creates a settings handler.
func NewSettingsHandler(service *services.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		errors:  apperrors.NewErrorHandler(logger),
	}
}

// UpdateSettingsRequest is the request body for replacing preferences.
type UpdateSettingsRequest struct {
	Theme         string `json:"theme" validate:"required,oneof=system light dark sepia"`
	FontSize      int    `json:"font_size" validate:"required,min=10,max=32"`
	Translation   string `json:"translation" validate:"required,min=2,max=8"`
	Notifications struct {
		DailyVerse      bool `json:"daily_verse"`
		ReadingReminder bool `json:"reading_reminder"`
		ReminderHour    int  `json:"reminder_hour" validate:"min=0,max=23"`
	} `json:"notifications"`
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	prefs, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, prefs)
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req UpdateSettingsRequest
	if err := common.ParseJSONBody(r, &req, maxSettingsBody); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	prefs := settings.Preferences{
		Theme:       settings.Theme(req.Theme),
		FontSize:    req.FontSize,
		Translation: scripture.Translation(req.Translation),
		Notifications: settings.NotificationSettings{
			DailyVerse:      req.Notifications.DailyVerse,
			ReadingReminder: req.Notifications.ReadingReminder,
			ReminderHour:    req.Notifications.ReminderHour,
		},
	}
	if err := h.service.Update(r.Context(), userID, prefs); err != nil {
		if apperrors.GetAppError(err) == nil {
			err = apperrors.NewValidationError(err.Error())
		}
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, prefs)
}
