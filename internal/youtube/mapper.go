package youtube

import (
	"strconv"
	"time"

	"focustube-backend/internal/models"
)

// MapSearchItems joins a search listing with its batched detail lookup
// into normalized records, preserving the listing's order. The join is a
// left join on video id: a listing entry with no matching detail gets
// the zero-duration sentinel and a zero view count.
func MapSearchItems(items []SearchItem, details []VideoItem) []models.VideoRecord {
	byID := indexDetails(details)

	records := make([]models.VideoRecord, 0, len(items))
	for _, item := range items {
		detail := byID[item.ID.VideoID]

		records = append(records, models.VideoRecord{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			ChannelID:    item.Snippet.ChannelID,
			ThumbnailURL: pickThumbnail(item.Snippet.Thumbnails),
			PublishedAt:  parseTimestamp(item.Snippet.PublishedAt),
			ViewCount:    parseCount(detail.Statistics.ViewCount),
			Duration:     FormatDuration(detailDuration(detail)),
		})
	}

	return records
}

// MapPlaylistItems does the same join for playlist entries. Playlist
// snippets attribute the entry to the playlist owner; the video owner
// fields are preferred when present.
func MapPlaylistItems(items []PlaylistItem, details []VideoItem) []models.VideoRecord {
	byID := indexDetails(details)

	records := make([]models.VideoRecord, 0, len(items))
	for _, item := range items {
		videoID := item.Snippet.ResourceID.VideoID
		detail := byID[videoID]

		channelTitle := item.Snippet.VideoOwnerChannelTitle
		if channelTitle == "" {
			channelTitle = item.Snippet.ChannelTitle
		}
		channelID := item.Snippet.VideoOwnerChannelID
		if channelID == "" {
			channelID = item.Snippet.ChannelID
		}

		records = append(records, models.VideoRecord{
			ID:           videoID,
			Title:        item.Snippet.Title,
			ChannelTitle: channelTitle,
			ChannelID:    channelID,
			ThumbnailURL: pickThumbnail(item.Snippet.Thumbnails),
			PublishedAt:  parseTimestamp(item.Snippet.PublishedAt),
			ViewCount:    parseCount(detail.Statistics.ViewCount),
			Duration:     FormatDuration(detailDuration(detail)),
		})
	}

	return records
}

// MapPlaylistInfo normalizes a single playlist resource.
func MapPlaylistInfo(p PlaylistResource) models.PlaylistRecord {
	return models.PlaylistRecord{
		ID:           p.ID,
		Title:        p.Snippet.Title,
		Description:  p.Snippet.Description,
		ChannelTitle: p.Snippet.ChannelTitle,
		ChannelID:    p.Snippet.ChannelID,
		ThumbnailURL: pickThumbnail(p.Snippet.Thumbnails),
		VideoCount:   p.ContentDetails.ItemCount,
		PublishedAt:  parseTimestamp(p.Snippet.PublishedAt),
	}
}

// MapVideoDetails normalizes a full video resource for the detail view.
func MapVideoDetails(v VideoItem) models.VideoDetailRecord {
	return models.VideoDetailRecord{
		ID:           v.ID,
		Title:        v.Snippet.Title,
		ChannelTitle: v.Snippet.ChannelTitle,
		ChannelID:    v.Snippet.ChannelID,
		Description:  v.Snippet.Description,
		PublishedAt:  parseTimestamp(v.Snippet.PublishedAt),
		ViewCount:    parseCount(v.Statistics.ViewCount),
		LikeCount:    parseCount(v.Statistics.LikeCount),
		CommentCount: parseCount(v.Statistics.CommentCount),
	}
}

func indexDetails(details []VideoItem) map[string]VideoItem {
	byID := make(map[string]VideoItem, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}
	return byID
}

func detailDuration(detail VideoItem) string {
	if detail.ContentDetails.Duration == "" {
		return ZeroDuration
	}
	return detail.ContentDetails.Duration
}

// pickThumbnail walks the resolution preference list: medium, then
// default, then empty.
func pickThumbnail(t Thumbnails) string {
	if t.Medium != nil && t.Medium.URL != "" {
		return t.Medium.URL
	}
	if t.Default != nil {
		return t.Default.URL
	}
	return ""
}

func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
