package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"focustube-backend/internal/services"
	"focustube-backend/internal/tracking"
	"focustube-backend/internal/youtube"
)

type SearchHandler struct {
	youtubeService *services.YouTubeService
	ledger         *tracking.Ledger
}

func NewSearchHandler(youtubeService *services.YouTubeService, ledger *tracking.Ledger) *SearchHandler {
	return &SearchHandler{youtubeService: youtubeService, ledger: ledger}
}

// Search runs a keyword search, records it in the usage ledger and
// trims the results to the user's content-length preferences. Upstream
// failure degrades to the fixed placeholder set, never to an error.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing query parameter q", r))
		return
	}

	h.ledger.RecordSearch(ctx, query)
	prefs := h.ledger.Preferences(ctx)

	records, outcome, kind := h.youtubeService.Search(ctx, query, prefs.SafeSearch)
	if outcome == services.OutcomeUpstream {
		records = youtube.PlaceholderSearchResults(query)
	}

	writeJSON(w, http.StatusOK, listingResponse{
		Status:    statusFor(outcome),
		ErrorKind: kind,
		Results:   youtube.FilterByPreferences(records, prefs.ShowShortForm, prefs.ShowLongForm),
	})
}

// Resolve classifies a pasted search-bar input as a video reference, a
// playlist reference or plain text, mirroring the precedence the
// search bar applies (playlist wins over video).
func (h *SearchHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	writeJSON(w, http.StatusOK, youtube.Recognize(req.Input))
}
