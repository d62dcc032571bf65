package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"focustube-backend/internal/models"
	"focustube-backend/internal/services"
	"focustube-backend/internal/tracking"
	"focustube-backend/internal/youtube"
)

type PlaylistHandler struct {
	youtubeService *services.YouTubeService
	ledger         *tracking.Ledger
}

func NewPlaylistHandler(youtubeService *services.YouTubeService, ledger *tracking.Ledger) *PlaylistHandler {
	return &PlaylistHandler{youtubeService: youtubeService, ledger: ledger}
}

type playlistInfoResponse struct {
	Status    string                `json:"status"`
	ErrorKind services.ErrorKind    `json:"error_kind,omitempty"`
	Playlist  models.PlaylistRecord `json:"playlist"`
}

// Info returns a playlist's metadata, degrading to the single
// placeholder record when the upstream lookup yields nothing.
func (h *PlaylistHandler) Info(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing playlist id", r))
		return
	}

	record, outcome, kind := h.youtubeService.PlaylistInfo(r.Context(), playlistID)
	if outcome != services.OutcomeOK {
		record = youtube.PlaceholderPlaylistInfo(playlistID)
	}

	writeJSON(w, http.StatusOK, playlistInfoResponse{
		Status:    statusFor(outcome),
		ErrorKind: kind,
		Playlist:  record,
	})
}

// Videos lists a playlist's entries as normalized records, trimmed to
// the user's content-length preferences. A playlist that resolves to
// nothing renders the placeholder set, like the original client did.
func (h *PlaylistHandler) Videos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing playlist id", r))
		return
	}

	maxResults, _ := strconv.Atoi(r.URL.Query().Get("max"))

	records, outcome, kind := h.youtubeService.PlaylistVideos(ctx, playlistID, maxResults)
	if outcome != services.OutcomeOK {
		records = youtube.PlaceholderPlaylistVideos()
	}

	prefs := h.ledger.Preferences(ctx)

	writeJSON(w, http.StatusOK, listingResponse{
		Status:    statusFor(outcome),
		ErrorKind: kind,
		Results:   youtube.FilterByPreferences(records, prefs.ShowShortForm, prefs.ShowLongForm),
	})
}
