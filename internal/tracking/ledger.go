package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"focustube-backend/internal/models"
	"focustube-backend/internal/storage"
)

// Storage keys, one named record each. The mixed naming is inherited
// from the data already written by earlier clients; changing it would
// orphan existing profiles.
const (
	keyUserActivity      = "user_activity"
	keyVideoPreferences  = "video_preferences"
	keySessionData       = "session_data"
	keyDailyActivity     = "daily_activity"
	keyKeepVideoOnSearch = "keepVideoOnSearch"
	keyNotifications     = "notifications"
)

const (
	dateLayout        = "2006-01-02"
	maxRecentSearches = 10
	retentionDays     = 30
)

// Ledger owns every read and write of the persisted usage records. All
// reads are total: a missing, unreadable or corrupt record degrades to
// its default value. Write failures are logged and absorbed; usage
// tracking must never break the feature that triggered it.
type Ledger struct {
	store storage.Store
	now   func() time.Time
}

func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// NewLedgerWithClock injects the clock, for exercising day rollover and
// retention windows in tests.
func NewLedgerWithClock(store storage.Store, now func() time.Time) *Ledger {
	return &Ledger{store: store, now: now}
}

// ──── Lifetime activity ────

func (l *Ledger) Activity(ctx context.Context) models.UserActivity {
	var activity models.UserActivity
	if !l.read(ctx, keyUserActivity, &activity) {
		return l.defaultActivity()
	}
	if activity.RecentSearches == nil {
		activity.RecentSearches = []string{}
	}
	return activity
}

// RecordSearch bumps the lifetime search counter, rotates the query
// into the recent-searches ring and feeds the daily and session
// counters.
func (l *Ledger) RecordSearch(ctx context.Context, query string) {
	activity := l.Activity(ctx)

	activity.SearchCount++
	activity.RecentSearches = pushRecent(activity.RecentSearches, query)
	activity.LastUpdated = l.now().UTC()

	l.write(ctx, keyUserActivity, activity)

	l.updateSession(ctx, 1, 0, 0)
	l.updateDaily(ctx, 0, 1, 0)
}

// RecordVideoWatch bumps the lifetime watch counters by one video and
// the given minutes, and feeds the daily and session counters. The
// video id itself is not persisted; only aggregates are kept.
func (l *Ledger) RecordVideoWatch(ctx context.Context, videoID string, minutes float64) {
	activity := l.Activity(ctx)

	activity.VideosWatched++
	activity.TotalWatchTime += minutes
	activity.LastUpdated = l.now().UTC()

	l.write(ctx, keyUserActivity, activity)

	l.updateSession(ctx, 0, 1, minutes)
	l.updateDaily(ctx, 1, 0, minutes)
}

func pushRecent(searches []string, query string) []string {
	next := make([]string, 0, maxRecentSearches)
	next = append(next, query)
	for _, s := range searches {
		if s == query {
			continue
		}
		next = append(next, s)
	}
	if len(next) > maxRecentSearches {
		next = next[:maxRecentSearches]
	}
	return next
}

// ──── Preferences and UI settings ────

func (l *Ledger) Preferences(ctx context.Context) models.VideoPreferences {
	var prefs models.VideoPreferences
	if !l.read(ctx, keyVideoPreferences, &prefs) {
		return defaultPreferences()
	}
	return prefs
}

func (l *Ledger) SavePreferences(ctx context.Context, prefs models.VideoPreferences) error {
	return l.writeErr(ctx, keyVideoPreferences, prefs)
}

func (l *Ledger) UISettings(ctx context.Context) models.UISettings {
	settings := models.UISettings{KeepVideoOnSearch: false, Notifications: true}
	l.read(ctx, keyKeepVideoOnSearch, &settings.KeepVideoOnSearch)
	l.read(ctx, keyNotifications, &settings.Notifications)
	return settings
}

func (l *Ledger) SaveUISettings(ctx context.Context, settings models.UISettings) error {
	if err := l.writeErr(ctx, keyKeepVideoOnSearch, settings.KeepVideoOnSearch); err != nil {
		return err
	}
	return l.writeErr(ctx, keyNotifications, settings.Notifications)
}

// ──── Session ────

// Session returns the calendar-day-scoped counters. A session whose
// start time falls on a different day than "now" is expired: it is
// replaced with zeroed counters and a fresh start time, which is also
// persisted immediately.
func (l *Ledger) Session(ctx context.Context) models.SessionData {
	var session models.SessionData
	if !l.read(ctx, keySessionData, &session) {
		return l.freshSession(ctx)
	}

	startDay := time.UnixMilli(session.StartTime).UTC().Format(dateLayout)
	if startDay != l.today() {
		return l.freshSession(ctx)
	}

	return session
}

func (l *Ledger) freshSession(ctx context.Context) models.SessionData {
	session := models.SessionData{StartTime: l.now().UnixMilli()}
	l.write(ctx, keySessionData, session)
	return session
}

func (l *Ledger) updateSession(ctx context.Context, searches, videos int, watchTime float64) {
	session := l.Session(ctx)
	session.SearchesThisSession += searches
	session.VideosWatchedThisSession += videos
	session.WatchTimeThisSession += watchTime
	l.write(ctx, keySessionData, session)
}

// ──── Daily activity ────

func (l *Ledger) DailyActivity(ctx context.Context) []models.DailyActivityEntry {
	var entries []models.DailyActivityEntry
	if !l.read(ctx, keyDailyActivity, &entries) {
		return []models.DailyActivityEntry{}
	}
	return entries
}

func (l *Ledger) updateDaily(ctx context.Context, videos, searches int, watchTime float64) {
	today := l.today()
	entries := l.DailyActivity(ctx)

	found := false
	for i := range entries {
		if entries[i].Date == today {
			entries[i].VideosWatched += videos
			entries[i].SearchCount += searches
			entries[i].WatchTime += watchTime
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, models.DailyActivityEntry{
			Date:          today,
			VideosWatched: videos,
			SearchCount:   searches,
			WatchTime:     watchTime,
		})
	}

	// Every write prunes beyond the retention window. Lexicographic
	// comparison on YYYY-MM-DD is date-order-equivalent.
	cutoff := l.cutoff(retentionDays)
	kept := entries[:0]
	for _, e := range entries {
		if e.Date >= cutoff {
			kept = append(kept, e)
		}
	}

	l.write(ctx, keyDailyActivity, kept)
}

// ──── Windowed aggregation ────

func (l *Ledger) WeeklyStats(ctx context.Context) models.WindowStats {
	return l.windowStats(ctx, 7)
}

func (l *Ledger) MonthlyStats(ctx context.Context) models.WindowStats {
	return l.windowStats(ctx, 30)
}

func (l *Ledger) windowStats(ctx context.Context, days int) models.WindowStats {
	cutoff := l.cutoff(days)

	var stats models.WindowStats
	for _, e := range l.DailyActivity(ctx) {
		if e.Date < cutoff {
			continue
		}
		stats.SearchCount += e.SearchCount
		stats.VideosWatched += e.VideosWatched
		stats.WatchTime += e.WatchTime
	}
	return stats
}

// WeeklyVideoData returns a fixed 7-element series of videos watched
// per day, oldest first (6 days ago through today), zero for days with
// no entry.
func (l *Ledger) WeeklyVideoData(ctx context.Context) []int {
	entries := l.DailyActivity(ctx)
	byDate := make(map[string]int, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e.VideosWatched
	}

	week := make([]int, 0, 7)
	for i := 6; i >= 0; i-- {
		day := l.now().UTC().AddDate(0, 0, -i).Format(dateLayout)
		week = append(week, byDate[day])
	}
	return week
}

// ──── Display helpers ────

// FormatWatchTime renders minutes as "42m", "2h" or "2h 05m"-style
// short strings for the analytics view.
func FormatWatchTime(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", int(math.Round(minutes)))
	}

	hours := int(minutes) / 60
	remaining := int(math.Round(math.Mod(minutes, 60)))

	if remaining == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, remaining)
}

// ──── Plumbing ────

func (l *Ledger) today() string {
	return l.now().UTC().Format(dateLayout)
}

func (l *Ledger) cutoff(days int) string {
	return l.now().UTC().AddDate(0, 0, -days).Format(dateLayout)
}

func (l *Ledger) defaultActivity() models.UserActivity {
	return models.UserActivity{
		LastUpdated:      l.now().UTC(),
		RecentSearches:   []string{},
		SessionStartTime: l.now().UnixMilli(),
	}
}

func defaultPreferences() models.VideoPreferences {
	return models.VideoPreferences{
		ShowShortForm: true,
		ShowLongForm:  true,
		AutoPlay:      false,
		SafeSearch:    true,
	}
}

// read unmarshals a record into v, reporting whether a usable value was
// found. Storage errors and corrupt payloads degrade to "not found".
func (l *Ledger) read(ctx context.Context, key string, v any) bool {
	data, ok, err := l.store.Get(ctx, key)
	if err != nil {
		log.Printf("Error loading %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Error decoding %s: %v", key, err)
		return false
	}
	return true
}

func (l *Ledger) write(ctx context.Context, key string, v any) {
	if err := l.writeErr(ctx, key, v); err != nil {
		log.Printf("Error saving %s: %v", key, err)
	}
}

func (l *Ledger) writeErr(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := l.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
