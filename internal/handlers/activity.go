package handlers

import (
	"encoding/json"
	"net/http"

	"focustube-backend/internal/tracking"
)

type ActivityHandler struct {
	ledger *tracking.Ledger
}

func NewActivityHandler(ledger *tracking.Ledger) *ActivityHandler {
	return &ActivityHandler{ledger: ledger}
}

// Get returns the lifetime activity record together with the current
// (calendar-day-scoped) session counters.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activity": h.ledger.Activity(ctx),
		"session":  h.ledger.Session(ctx),
	})
}

// Watch records that a video was watched for some minutes.
func (h *ActivityHandler) Watch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VideoID string  `json:"video_id"`
		Minutes float64 `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.VideoID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing video_id", r))
		return
	}
	if req.Minutes < 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Minutes must not be negative", r))
		return
	}

	h.ledger.RecordVideoWatch(r.Context(), req.VideoID, req.Minutes)

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// Stats returns windowed aggregates over the daily activity history.
func (h *ActivityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	window := r.URL.Query().Get("window")
	if window == "" {
		window = "weekly"
	}

	var stats interface{}
	var watchTime float64
	switch window {
	case "weekly":
		s := h.ledger.WeeklyStats(ctx)
		stats, watchTime = s, s.WatchTime
	case "monthly":
		s := h.ledger.MonthlyStats(ctx)
		stats, watchTime = s, s.WatchTime
	default:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Window must be weekly or monthly", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"window":             window,
		"stats":              stats,
		"watch_time_display": tracking.FormatWatchTime(watchTime),
	})
}

// WeeklyVideos returns the fixed 7-day series of videos watched per
// day, oldest first, for the analytics chart.
func (h *ActivityHandler) WeeklyVideos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days": h.ledger.WeeklyVideoData(r.Context()),
	})
}
