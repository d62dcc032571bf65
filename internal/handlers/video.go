package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"focustube-backend/internal/models"
	"focustube-backend/internal/services"
	"focustube-backend/internal/youtube"
)

type VideoHandler struct {
	youtubeService *services.YouTubeService
}

func NewVideoHandler(youtubeService *services.YouTubeService) *VideoHandler {
	return &VideoHandler{youtubeService: youtubeService}
}

type videoDetailResponse struct {
	Status    string                   `json:"status"`
	ErrorKind services.ErrorKind       `json:"error_kind,omitempty"`
	Video     models.VideoDetailRecord `json:"video"`
}

// Details returns the full record for one video. Both an upstream
// failure and an unknown id fall back to the placeholder record; the
// status field tells the two apart.
func (h *VideoHandler) Details(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "id")
	if videoID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing video id", r))
		return
	}

	record, outcome, kind := h.youtubeService.VideoDetails(r.Context(), videoID)
	if outcome != services.OutcomeOK {
		record = youtube.PlaceholderVideoDetails(videoID)
	}

	writeJSON(w, http.StatusOK, videoDetailResponse{
		Status:    statusFor(outcome),
		ErrorKind: kind,
		Video:     record,
	})
}
