package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"focustube-backend/internal/models"
	"focustube-backend/internal/storage"
	"focustube-backend/internal/youtube"
)

// Outcome tags what a fetch produced, so callers can tell a genuine
// empty result from an upstream failure instead of collapsing both
// into placeholder data.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeEmpty    Outcome = "empty"
	OutcomeUpstream Outcome = "upstream_error"
)

// ErrorKind classifies an upstream failure for diagnostics. The degrade
// policy is the same for all kinds; only the logging differs.
type ErrorKind string

const (
	KindNone      ErrorKind = ""
	KindAuth      ErrorKind = "auth"
	KindQuota     ErrorKind = "quota"
	KindNetwork   ErrorKind = "network"
	KindBadStatus ErrorKind = "bad_status"
	KindDecode    ErrorKind = "decode"
)

// Storage key for the user-supplied API key override.
const keyCustomAPIKey = "custom_youtube_api_key"

const (
	searchMaxResults      = 10
	playlistMaxResults    = 50
	detailBatchPartFields = "contentDetails,statistics"
)

// YouTubeService talks to the Data API v3. All calls are plain GETs,
// awaited sequentially, with no retry: a failed call degrades to the
// caller's placeholder policy. Cancellation rides the request context;
// the client timeout bounds a hung upstream.
type YouTubeService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	store      storage.Store
}

func NewYouTubeService(baseURL, apiKey string, timeout time.Duration, store storage.Store) *YouTubeService {
	return &YouTubeService{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		store:      store,
	}
}

// Search runs a keyword search and joins in the batched detail lookup
// for durations and view counts.
func (s *YouTubeService) Search(ctx context.Context, query string, safeSearch bool) ([]models.VideoRecord, Outcome, ErrorKind) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", fmt.Sprintf("%d", searchMaxResults))
	params.Set("q", query)
	params.Set("type", "video")
	if safeSearch {
		params.Set("safeSearch", "strict")
	}

	var listing youtube.SearchListResponse
	if kind := s.getJSON(ctx, "/search", params, &listing); kind != KindNone {
		return nil, OutcomeUpstream, kind
	}

	ids := make([]string, 0, len(listing.Items))
	for _, item := range listing.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return nil, OutcomeEmpty, KindNone
	}

	details, kind := s.videoList(ctx, ids, detailBatchPartFields)
	if kind != KindNone {
		return nil, OutcomeUpstream, kind
	}

	return youtube.MapSearchItems(listing.Items, details.Items), OutcomeOK, KindNone
}

// VideoDetails fetches the full record for one video.
func (s *YouTubeService) VideoDetails(ctx context.Context, videoID string) (models.VideoDetailRecord, Outcome, ErrorKind) {
	details, kind := s.videoList(ctx, []string{videoID}, "snippet,"+detailBatchPartFields)
	if kind != KindNone {
		return models.VideoDetailRecord{}, OutcomeUpstream, kind
	}
	if len(details.Items) == 0 {
		return models.VideoDetailRecord{}, OutcomeEmpty, KindNone
	}

	return youtube.MapVideoDetails(details.Items[0]), OutcomeOK, KindNone
}

// PlaylistInfo fetches a playlist's metadata.
func (s *YouTubeService) PlaylistInfo(ctx context.Context, playlistID string) (models.PlaylistRecord, Outcome, ErrorKind) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", playlistID)

	var listing youtube.PlaylistListResponse
	if kind := s.getJSON(ctx, "/playlists", params, &listing); kind != KindNone {
		return models.PlaylistRecord{}, OutcomeUpstream, kind
	}
	if len(listing.Items) == 0 {
		return models.PlaylistRecord{}, OutcomeEmpty, KindNone
	}

	return youtube.MapPlaylistInfo(listing.Items[0]), OutcomeOK, KindNone
}

// PlaylistVideos lists a playlist's entries as normalized records. The
// three dependent calls (entries, then batched details) run strictly in
// sequence; there is nothing to pipeline.
func (s *YouTubeService) PlaylistVideos(ctx context.Context, playlistID string, maxResults int) ([]models.VideoRecord, Outcome, ErrorKind) {
	if maxResults <= 0 || maxResults > playlistMaxResults {
		maxResults = playlistMaxResults
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("playlistId", playlistID)

	var listing youtube.PlaylistItemListResponse
	if kind := s.getJSON(ctx, "/playlistItems", params, &listing); kind != KindNone {
		return nil, OutcomeUpstream, kind
	}

	ids := make([]string, 0, len(listing.Items))
	for _, item := range listing.Items {
		if item.Snippet.ResourceID.VideoID != "" {
			ids = append(ids, item.Snippet.ResourceID.VideoID)
		}
	}
	if len(ids) == 0 {
		return nil, OutcomeEmpty, KindNone
	}

	details, kind := s.videoList(ctx, ids, detailBatchPartFields)
	if kind != KindNone {
		return nil, OutcomeUpstream, kind
	}

	return youtube.MapPlaylistItems(listing.Items, details.Items), OutcomeOK, KindNone
}

// ValidateKey probes the search endpoint with a candidate key before it
// is stored as the override.
func (s *YouTubeService) ValidateKey(ctx context.Context, key string) error {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", "1")
	params.Set("q", "test")
	params.Set("type", "video")
	params.Set("key", key)

	endpoint := s.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build validation request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach YouTube API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr youtube.ErrorResponse
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error.Message != "" {
			return fmt.Errorf("key rejected: %s", apiErr.Error.Message)
		}
		return fmt.Errorf("key rejected with status %d", resp.StatusCode)
	}

	return nil
}

// SetCustomKey stores the user-supplied override; ClearCustomKey
// removes it, falling back to the configured key.
func (s *YouTubeService) SetCustomKey(ctx context.Context, key string) error {
	data, err := json.Marshal(key)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, keyCustomAPIKey, data)
}

func (s *YouTubeService) ClearCustomKey(ctx context.Context) error {
	return s.store.Delete(ctx, keyCustomAPIKey)
}

// resolveKey prefers the stored override over the configured key.
func (s *YouTubeService) resolveKey(ctx context.Context) string {
	data, ok, err := s.store.Get(ctx, keyCustomAPIKey)
	if err != nil || !ok {
		return s.apiKey
	}

	var custom string
	if err := json.Unmarshal(data, &custom); err != nil || custom == "" {
		return s.apiKey
	}
	return custom
}

func (s *YouTubeService) videoList(ctx context.Context, ids []string, part string) (youtube.VideoListResponse, ErrorKind) {
	params := url.Values{}
	params.Set("part", part)
	params.Set("id", strings.Join(ids, ","))

	var details youtube.VideoListResponse
	if kind := s.getJSON(ctx, "/videos", params, &details); kind != KindNone {
		return youtube.VideoListResponse{}, kind
	}
	return details, KindNone
}

// getJSON performs one GET against the Data API and decodes the body.
// Failures are logged here and reported as a classification only; the
// caller never sees a raw error.
func (s *YouTubeService) getJSON(ctx context.Context, path string, params url.Values, v any) ErrorKind {
	params.Set("key", s.resolveKey(ctx))
	endpoint := s.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("YouTube API request build error for %s: %v", path, err)
		return KindNetwork
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("YouTube API network error for %s: %v", path, err)
		return KindNetwork
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		kind := classifyStatus(resp)
		log.Printf("YouTube API error for %s: status %d (%s)", path, resp.StatusCode, kind)
		return kind
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		log.Printf("YouTube API decode error for %s: %v", path, err)
		return KindDecode
	}

	return KindNone
}

func classifyStatus(resp *http.Response) ErrorKind {
	var apiErr youtube.ErrorResponse
	json.NewDecoder(resp.Body).Decode(&apiErr)

	for _, e := range apiErr.Error.Errors {
		if strings.Contains(strings.ToLower(e.Reason), "quota") {
			return KindQuota
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	default:
		return KindBadStatus
	}
}
