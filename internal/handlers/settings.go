package handlers

import (
	"encoding/json"
	"net/http"

	"focustube-backend/internal/models"
	"focustube-backend/internal/tracking"
)

type SettingsHandler struct {
	ledger *tracking.Ledger
}

func NewSettingsHandler(ledger *tracking.Ledger) *SettingsHandler {
	return &SettingsHandler{ledger: ledger}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.UISettings(r.Context()))
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings models.UISettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.ledger.SaveUISettings(r.Context(), settings); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save settings", r))
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
