// Package risingstar discovers growth-opportunity channels from a single
// video search (spec §4.8, C8): channels with high engagement relative
// to subscriber count and moderate upload activity.
package risingstar

import "ytniche/domain/contenttype"

// Score is the three-part RisingStarScore (spec §3).
type Score struct {
	Viral    float64 `json:"viral"`
	Size     float64 `json:"size"`
	Activity float64 `json:"activity"`
	Total    float64 `json:"total"`
}

// Channel is one discovered rising-star candidate.
type Channel struct {
	ChannelID          string                  `json:"channel_id"`
	Name               string                  `json:"name"`
	Subscribers        int64                   `json:"subscribers"`
	TotalViews         int64                   `json:"total_views"`
	SampleVideoCount   int                     `json:"sample_video_count"`
	AvgDurationMinutes float64                 `json:"avg_duration_minutes"`
	HasLongVideos      bool                    `json:"has_long_videos"`
	ContentType        contenttype.ContentType `json:"content_type"`
	FacelessScore      int                     `json:"faceless_score"`
	Score              Score                   `json:"score"`
}

// Summary names the best opportunity and how many channels were dropped
// by the duration filter (spec §4.8 step 6).
type Summary struct {
	BestOpportunity    string `json:"best_opportunity"`
	FilteredByDuration int    `json:"filtered_by_duration"`
	TotalCandidates    int    `json:"total_candidates"`
}

// Result is Discover's return shape.
type Result struct {
	Channels []Channel `json:"channels"`
	Summary  Summary   `json:"summary"`
}
