package models

import "time"

// VideoRecord is the normalized shape every listing endpoint returns,
// regardless of which upstream payload it came from.
type VideoRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	ChannelID    string    `json:"channel_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	Duration     string    `json:"duration"` // display string, e.g. "1:02:03" or "5:09"
}

// VideoDetailRecord extends VideoRecord with the fields only the
// single-video detail view needs.
type VideoDetailRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	ChannelID    string    `json:"channel_id"`
	Description  string    `json:"description"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}
