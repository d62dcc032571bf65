package youtube

// Wire shapes for the Data API v3 payloads this client consumes. Only
// the fields we read are declared; everything else is ignored by the
// JSON decoder. Numeric statistics arrive as strings and timestamps as
// RFC 3339 strings; the mapper owns the tolerant conversions.

type Thumbnail struct {
	URL string `json:"url"`
}

type Thumbnails struct {
	Default *Thumbnail `json:"default"`
	Medium  *Thumbnail `json:"medium"`
}

type ResourceID struct {
	VideoID string `json:"videoId"`
}

type Snippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	ChannelID    string     `json:"channelId"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`

	// playlistItems only
	VideoOwnerChannelTitle string     `json:"videoOwnerChannelTitle"`
	VideoOwnerChannelID    string     `json:"videoOwnerChannelId"`
	ResourceID             ResourceID `json:"resourceId"`
}

type SearchItemID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type SearchItem struct {
	ID      SearchItemID `json:"id"`
	Snippet Snippet      `json:"snippet"`
}

type SearchListResponse struct {
	Items []SearchItem `json:"items"`
}

type PlaylistItem struct {
	Snippet Snippet `json:"snippet"`
}

type PlaylistItemListResponse struct {
	Items []PlaylistItem `json:"items"`
}

type VideoContentDetails struct {
	Duration string `json:"duration"`
}

type VideoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type VideoItem struct {
	ID             string              `json:"id"`
	Snippet        Snippet             `json:"snippet"`
	ContentDetails VideoContentDetails `json:"contentDetails"`
	Statistics     VideoStatistics     `json:"statistics"`
}

type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

type PlaylistContentDetails struct {
	ItemCount int64 `json:"itemCount"`
}

type PlaylistResource struct {
	ID             string                 `json:"id"`
	Snippet        Snippet                `json:"snippet"`
	ContentDetails PlaylistContentDetails `json:"contentDetails"`
}

type PlaylistListResponse struct {
	Items []PlaylistResource `json:"items"`
}

// ErrorResponse is the envelope the Data API returns on non-2xx status.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
