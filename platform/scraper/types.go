// Package scraper wraps the external command-line scraping tool (spec §4.2,
// C2). The invocation shape is fixed in code and the tool name comes from
// Config.Binary (default "yt-dlp", set from configuration); only
// the request/response contract described in spec §6 is specified here —
// the scraper binary itself is an external collaborator (spec §1).
package scraper

import "time"

// ItemKind distinguishes a normalized search result item (spec §3).
type ItemKind string

const (
	KindVideo   ItemKind = "video"
	KindChannel ItemKind = "channel"
)

// SearchItem is one normalized entry in a SearchResult (spec §3). Its Kind
// is the kind of the requested search type (see toSearchItem) and ID is
// the scraper record's id as given; the ID's shape is not checked against
// the Kind, and no handle or channel id is resolved during normalization.
type SearchItem struct {
	Kind          ItemKind `json:"kind"`
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	ChannelID     string   `json:"channel_id"`
	ChannelTitle  string   `json:"channel_title"`
	ChannelHandle string   `json:"channel_handle,omitempty"`
	ChannelURL    string   `json:"channel_url"`
	Description   string   `json:"description"`
	PublishedAt   string   `json:"published_at"` // ISO-8601
	ThumbnailURL  string   `json:"thumbnail_url,omitempty"`
	ViewCount     *int64   `json:"view_count,omitempty"` // videos only
}

// PageInfo carries the scraper's estimate of total matches for a search.
type PageInfo struct {
	TotalResults int64 `json:"total_results"`
}

// SearchResult is the normalized output of a scrape (spec §3): a mapping
// from item kind to its items, plus a page-size estimate.
type SearchResult struct {
	Items    map[ItemKind][]SearchItem `json:"items"`
	PageInfo PageInfo                  `json:"page_info"`
}

// AllItems flattens Items in a stable kind order (video, channel).
func (r SearchResult) AllItems() []SearchItem {
	out := make([]SearchItem, 0, len(r.Items[KindVideo])+len(r.Items[KindChannel]))
	out = append(out, r.Items[KindVideo]...)
	out = append(out, r.Items[KindChannel]...)
	return out
}

// VideoInfo is rich per-video metadata from the scraper (spec §3).
type VideoInfo struct {
	ID                   string
	Title                string
	DurationSeconds      int64
	ViewCount            int64
	Uploader             string
	UploaderID           string // may carry a leading handle marker ("@name")
	UploaderURL          string
	ChannelFollowerCount int64
	UploadDate           string // YYYYMMDD
	ChannelViewCount     int64  // optional, 0 if absent
	Description          string
}

// ChannelSummary is aggregated from a video search, not fetched directly
// (spec §3), except where the gateway's GetChannel resolves one in
// isolation for the competitor analyzer.
type ChannelSummary struct {
	ID                 string
	Name               string
	HandleURL          string
	VideoCountInSample int
	LatestUpload       time.Time
	AggregatedViews    int64 // may be synthesised (views-per-video x sample count)
	Subscribers        int64 // 0 until enriched
	AvgDurationMinutes float64
	HasLongVideos      bool
	ContentType        string
	FacelessScore      int
	CopyIndicators     []string
}
