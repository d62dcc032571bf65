package youtube

import (
	"fmt"
	"time"

	"focustube-backend/internal/models"
)

// Static placeholder datasets substituted when the upstream API is
// unavailable. Listing UIs always get something to render; the handler
// marks the response as degraded so callers can tell.

const placeholderThumbnail = "/placeholder.svg?height=180&width=320"

// PlaceholderSearchResults returns the fixed three-record fallback for a
// failed search, themed on the query.
func PlaceholderSearchResults(query string) []models.VideoRecord {
	now := time.Now().UTC()

	return []models.VideoRecord{
		{
			ID:           "dQw4w9WgXcQ",
			Title:        fmt.Sprintf("%s - Top Result", query),
			ChannelTitle: "Popular Channel",
			ChannelID:    "channel-1",
			ThumbnailURL: placeholderThumbnail,
			PublishedAt:  now,
			ViewCount:    1234567,
			Duration:     "3:45",
		},
		{
			ID:           "kJQP7kiw5Fk",
			Title:        fmt.Sprintf("How to %s - Tutorial", query),
			ChannelTitle: "Tutorial Channel",
			ChannelID:    "channel-2",
			ThumbnailURL: placeholderThumbnail,
			PublishedAt:  now.AddDate(0, 0, -7),
			ViewCount:    987654,
			Duration:     "10:21",
		},
		{
			ID:           "9bZkp7q19f0",
			Title:        fmt.Sprintf("%s Explained", query),
			ChannelTitle: "Educational Channel",
			ChannelID:    "channel-3",
			ThumbnailURL: placeholderThumbnail,
			PublishedAt:  now.AddDate(0, 0, -30),
			ViewCount:    567890,
			Duration:     "15:08",
		},
	}
}

// PlaceholderPlaylistVideos returns the fixed three-record fallback for
// a failed playlist listing.
func PlaceholderPlaylistVideos() []models.VideoRecord {
	now := time.Now().UTC()

	return []models.VideoRecord{
		{
			ID:           "dQw4w9WgXcQ",
			Title:        "Sample Video 1 from Playlist",
			ChannelTitle: "Sample Channel",
			ChannelID:    "sample-channel",
			ThumbnailURL: placeholderThumbnail,
			PublishedAt:  now,
			ViewCount:    1000000,
			Duration:     "3:45",
		},
		{
			ID:           "kJQP7kiw5Fk",
			Title:        "Sample Video 2 from Playlist",
			ChannelTitle: "Sample Channel",
			ChannelID:    "sample-channel",
			ThumbnailURL: placeholderThumbnail,
			PublishedAt:  now.AddDate(0, 0, -1),
			ViewCount:    500000,
			Duration:     "5:20",
		},
		{
			ID:           "9bZkp7q19f0",
			Title:        "Sample Video 3 from Playlist",
			ChannelTitle: "Sample Channel",
			ChannelID:    "sample-channel",
			ThumbnailURL: placeholderThumbnail,
			PublishedAt:  now.AddDate(0, 0, -2),
			ViewCount:    750000,
			Duration:     "8:15",
		},
	}
}

// PlaceholderPlaylistInfo returns the single-record fallback for a
// failed playlist metadata lookup.
func PlaceholderPlaylistInfo(playlistID string) models.PlaylistRecord {
	return models.PlaylistRecord{
		ID:           playlistID,
		Title:        fmt.Sprintf("Sample Playlist %s", playlistID),
		Description:  "This is a sample playlist description.",
		ChannelTitle: "Sample Channel",
		ChannelID:    "sample-channel-id",
		ThumbnailURL: placeholderThumbnail,
		VideoCount:   10,
		PublishedAt:  time.Now().UTC(),
	}
}

// PlaceholderVideoDetails returns the fallback detail record for a
// failed single-video lookup.
func PlaceholderVideoDetails(videoID string) models.VideoDetailRecord {
	return models.VideoDetailRecord{
		ID:           videoID,
		Title:        fmt.Sprintf("Video %s", videoID),
		ChannelTitle: "Channel Name",
		ChannelID:    "channel-id",
		Description:  "This is a video description. In a real deployment this would come from the YouTube API.",
		PublishedAt:  time.Now().UTC(),
		ViewCount:    1234567,
		LikeCount:    12345,
		CommentCount: 1234,
	}
}
