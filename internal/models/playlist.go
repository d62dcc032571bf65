package models

import "time"

type PlaylistRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channel_title"`
	ChannelID    string    `json:"channel_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	VideoCount   int64     `json:"video_count"`
	PublishedAt  time.Time `json:"published_at"`
}
