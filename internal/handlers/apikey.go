package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"focustube-backend/internal/services"
)

type KeyHandler struct {
	youtubeService *services.YouTubeService
}

func NewKeyHandler(youtubeService *services.YouTubeService) *KeyHandler {
	return &KeyHandler{youtubeService: youtubeService}
}

// Update stores a user-supplied API key override after probing the API
// with it, so a mistyped key is rejected immediately instead of
// silently degrading every later call.
func (h *KeyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing api_key", r))
		return
	}

	if err := h.youtubeService.ValidateKey(r.Context(), key); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_KEY", err.Error(), r))
		return
	}

	if err := h.youtubeService.SetCustomKey(r.Context(), key); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store API key", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// Delete removes the override; calls fall back to the configured key.
func (h *KeyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.youtubeService.ClearCustomKey(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to clear API key", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
