package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"focustube-backend/internal/models"
	"focustube-backend/internal/services"
	"focustube-backend/internal/storage"
	"focustube-backend/internal/tracking"
)

func failingUpstream(t *testing.T) *services.YouTubeService {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return services.NewYouTubeService(server.URL, "test-key", 5*time.Second, storage.NewMemoryStore())
}

// ─── Search Handler Tests ───

func TestSearchHandler_DegradesToPlaceholders(t *testing.T) {
	store := storage.NewMemoryStore()
	ledger := tracking.NewLedger(store)
	h := NewSearchHandler(failingUpstream(t), ledger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=cats", nil)
	rr := httptest.NewRecorder()

	h.Search(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp struct {
		Status    string               `json:"status"`
		ErrorKind string               `json:"error_kind"`
		Results   []models.VideoRecord `json:"results"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "degraded" {
		t.Errorf("Expected degraded status, got %q", resp.Status)
	}
	if resp.ErrorKind != "bad_status" {
		t.Errorf("Expected bad_status kind, got %q", resp.ErrorKind)
	}
	if len(resp.Results) != 3 {
		t.Errorf("Expected 3 placeholder records, got %d", len(resp.Results))
	}
	if !strings.Contains(resp.Results[0].Title, "cats") {
		t.Errorf("Expected placeholder themed on the query, got %q", resp.Results[0].Title)
	}

	// The search is still recorded even though upstream failed.
	activity := ledger.Activity(req.Context())
	if activity.SearchCount != 1 {
		t.Errorf("Expected the search to be recorded, got count %d", activity.SearchCount)
	}
	if len(activity.RecentSearches) != 1 || activity.RecentSearches[0] != "cats" {
		t.Errorf("Expected recent searches [cats], got %v", activity.RecentSearches)
	}
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	h := NewSearchHandler(failingUpstream(t), tracking.NewLedger(storage.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	rr := httptest.NewRecorder()

	h.Search(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestSearchHandler_AppliesPreferenceFilter(t *testing.T) {
	store := storage.NewMemoryStore()
	ledger := tracking.NewLedger(store)
	h := NewSearchHandler(failingUpstream(t), ledger)

	// The placeholder set is all long-form, so hiding long-form
	// leaves nothing.
	prefs := models.VideoPreferences{ShowShortForm: true, ShowLongForm: false, SafeSearch: true}
	if err := ledger.SavePreferences(httptest.NewRequest(http.MethodGet, "/", nil).Context(), prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=cats", nil)
	rr := httptest.NewRecorder()

	h.Search(rr, req)

	var resp struct {
		Results []models.VideoRecord `json:"results"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)

	if len(resp.Results) != 0 {
		t.Errorf("Expected all placeholder results filtered out, got %d", len(resp.Results))
	}
}

func TestResolveHandler_PlaylistPrecedence(t *testing.T) {
	h := NewSearchHandler(failingUpstream(t), tracking.NewLedger(storage.NewMemoryStore()))

	body, _ := json.Marshal(map[string]string{
		"input": "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resolve", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Resolve(rr, req)

	var ref struct {
		Kind string `json:"kind"`
		ID   string `json:"id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&ref); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if ref.Kind != "playlist" || ref.ID != "PLabc123" {
		t.Errorf("Expected playlist/PLabc123, got %s/%s", ref.Kind, ref.ID)
	}
}

// ─── Activity Handler Tests ───

func TestActivityHandler_WatchThenStats(t *testing.T) {
	ledger := tracking.NewLedger(storage.NewMemoryStore())
	h := NewActivityHandler(ledger)

	for _, minutes := range []float64{12.5, 7.5} {
		body, _ := json.Marshal(map[string]interface{}{"video_id": "dQw4w9WgXcQ", "minutes": minutes})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/activity/watch", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Watch(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activity/stats?window=weekly", nil)
	rr := httptest.NewRecorder()

	h.Stats(rr, req)

	var resp struct {
		Window           string             `json:"window"`
		Stats            models.WindowStats `json:"stats"`
		WatchTimeDisplay string             `json:"watch_time_display"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Stats.VideosWatched != 2 || resp.Stats.WatchTime != 20 {
		t.Errorf("Unexpected stats: %+v", resp.Stats)
	}
	if resp.WatchTimeDisplay != "20m" {
		t.Errorf("Expected 20m display, got %q", resp.WatchTimeDisplay)
	}
}

func TestActivityHandler_WatchValidation(t *testing.T) {
	h := NewActivityHandler(tracking.NewLedger(storage.NewMemoryStore()))

	tests := []struct {
		name string
		body string
	}{
		{"missing video id", `{"minutes": 5}`},
		{"negative minutes", `{"video_id": "abc12345678", "minutes": -1}`},
		{"invalid body", `{not json`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/activity/watch", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			h.Watch(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestActivityHandler_StatsRejectsUnknownWindow(t *testing.T) {
	h := NewActivityHandler(tracking.NewLedger(storage.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activity/stats?window=forever", nil)
	rr := httptest.NewRecorder()

	h.Stats(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestActivityHandler_WeeklyVideos(t *testing.T) {
	h := NewActivityHandler(tracking.NewLedger(storage.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activity/weekly-videos", nil)
	rr := httptest.NewRecorder()

	h.WeeklyVideos(rr, req)

	var resp struct {
		Days []int `json:"days"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Days) != 7 {
		t.Errorf("Expected a 7-element series, got %d", len(resp.Days))
	}
}

// ─── Preferences Handler Tests ───

func TestPreferencesHandler_RoundTrip(t *testing.T) {
	ledger := tracking.NewLedger(storage.NewMemoryStore())
	h := NewPreferencesHandler(ledger)

	body, _ := json.Marshal(models.VideoPreferences{ShowShortForm: false, ShowLongForm: true, AutoPlay: true})
	putReq := httptest.NewRequest(http.MethodPut, "/api/v1/preferences", bytes.NewReader(body))
	putRR := httptest.NewRecorder()

	h.Update(putRR, putReq)
	if putRR.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", putRR.Code)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	getRR := httptest.NewRecorder()

	h.Get(getRR, getReq)

	var prefs models.VideoPreferences
	if err := json.NewDecoder(getRR.Body).Decode(&prefs); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if prefs.ShowShortForm || !prefs.ShowLongForm || !prefs.AutoPlay {
		t.Errorf("Unexpected preferences after round trip: %+v", prefs)
	}
}

// ─── Video Handler Tests ───

func TestVideoHandler_DetailsFallsBack(t *testing.T) {
	h := NewVideoHandler(failingUpstream(t))

	r := chi.NewRouter()
	r.Get("/api/v1/videos/{id}", h.Details)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	var resp struct {
		Status string                   `json:"status"`
		Video  models.VideoDetailRecord `json:"video"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "degraded" {
		t.Errorf("Expected degraded status, got %q", resp.Status)
	}
	if resp.Video.ID != "dQw4w9WgXcQ" {
		t.Errorf("Expected placeholder keyed on the requested id, got %q", resp.Video.ID)
	}
}

// ─── Key Handler Tests ───

func TestKeyHandler_RejectsInvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	}))
	defer server.Close()

	service := services.NewYouTubeService(server.URL, "env-key", 5*time.Second, storage.NewMemoryStore())
	h := NewKeyHandler(service)

	body, _ := json.Marshal(map[string]string{"api_key": "definitely-wrong"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/key", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Error.Code != "INVALID_KEY" {
		t.Errorf("Expected INVALID_KEY code, got %q", resp.Error.Code)
	}
}

func TestKeyHandler_StoresValidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	service := services.NewYouTubeService(server.URL, "env-key", 5*time.Second, storage.NewMemoryStore())
	h := NewKeyHandler(service)

	body, _ := json.Marshal(map[string]string{"api_key": "shiny-new-key"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/key", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]bool
	json.NewDecoder(rr.Body).Decode(&resp)
	if !resp["valid"] {
		t.Error("Expected valid=true")
	}
}
