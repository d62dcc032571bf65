package models

import "time"

// UserActivity is the lifetime usage record. Counters only ever grow;
// RecentSearches is a bounded most-recent-first ring of at most 10 entries.
type UserActivity struct {
	SearchCount      int       `json:"search_count"`
	VideosWatched    int       `json:"videos_watched"`
	TotalWatchTime   float64   `json:"total_watch_time"` // minutes
	LastUpdated      time.Time `json:"last_updated"`
	RecentSearches   []string  `json:"recent_searches"`
	SessionStartTime int64     `json:"session_start_time"` // unix millis
}

type VideoPreferences struct {
	ShowShortForm bool `json:"show_short_form"`
	ShowLongForm  bool `json:"show_long_form"`
	AutoPlay      bool `json:"auto_play"`
	SafeSearch    bool `json:"safe_search"`
}

// SessionData holds the calendar-day-scoped counters. When the day of
// StartTime no longer matches "today" the whole record is replaced.
type SessionData struct {
	StartTime                int64   `json:"start_time"` // unix millis
	SearchesThisSession      int     `json:"searches_this_session"`
	VideosWatchedThisSession int     `json:"videos_watched_this_session"`
	WatchTimeThisSession     float64 `json:"watch_time_this_session"` // minutes
}

// DailyActivityEntry is one calendar day's aggregated counters, the unit
// of retention and of windowed aggregation.
type DailyActivityEntry struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	VideosWatched int     `json:"videos_watched"`
	SearchCount   int     `json:"search_count"`
	WatchTime     float64 `json:"watch_time"` // minutes
}

// WindowStats is a rolling-window aggregate over daily activity entries.
type WindowStats struct {
	SearchCount   int     `json:"search_count"`
	VideosWatched int     `json:"videos_watched"`
	WatchTime     float64 `json:"watch_time"`
}

// UISettings carries the simple view flags that are persisted but never
// interpreted by the backend.
type UISettings struct {
	KeepVideoOnSearch bool `json:"keep_video_on_search"`
	Notifications     bool `json:"notifications"`
}
