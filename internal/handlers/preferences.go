package handlers

import (
	"encoding/json"
	"net/http"

	"focustube-backend/internal/models"
	"focustube-backend/internal/tracking"
)

type PreferencesHandler struct {
	ledger *tracking.Ledger
}

func NewPreferencesHandler(ledger *tracking.Ledger) *PreferencesHandler {
	return &PreferencesHandler{ledger: ledger}
}

func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Preferences(r.Context()))
}

// Update replaces the preference record wholesale. Disabling both
// content-length toggles is allowed; the filter then hides everything,
// which is the documented behavior.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var prefs models.VideoPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.ledger.SavePreferences(r.Context(), prefs); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save preferences", r))
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}
