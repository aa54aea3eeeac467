package risingstar

import (
	"context"
	"errors"
	"sort"
	"time"

	"ytniche/domain/contenttype"
	"ytniche/platform/scraper"
)

// ErrNoResults is returned when the initial search yields zero items
// (spec §4.8 step 1).
var ErrNoResults = errors.New("no_results")

// EnrichmentDelay is the politeness pause between per-channel enrichment
// calls (spec §4.8 step 3: "simple constant, not adaptive").
const EnrichmentDelay = 200 * time.Millisecond

const (
	defaultMaxResults  = 50
	defaultMinDuration = 40.0
	enrichTopN         = 10
	resultCount        = 10
	minTotalScore      = 50
)

// aggregate accumulates one channel's sample across the search results
// (spec §4.8 step 2).
type aggregate struct {
	channelID    string
	name         string
	sampleCount  int
	latestUpload time.Time
	videos       []scraper.SearchItem
}

// Discover implements the full pipeline (spec §4.8).
func Discover(ctx context.Context, gw scraper.Gateway, niche string, maxResults int, minDurationMinutes float64) (Result, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if minDurationMinutes < 0 {
		minDurationMinutes = defaultMinDuration
	}

	searchRes, err := gw.Search(ctx, niche, maxResults, scraper.SearchVideos)
	if err != nil {
		return Result{}, err
	}
	items := searchRes.Items[scraper.KindVideo]
	if len(items) == 0 {
		return Result{}, ErrNoResults
	}

	aggs := aggregateByChannel(items)
	topAggs := topBySampleCount(aggs, enrichTopN)
	enriched := enrichChannels(ctx, gw, topAggs, minDurationMinutes)

	candidates := make([]Channel, 0, len(enriched))
	filteredByDuration := 0
	for _, ch := range enriched {
		if !ch.HasLongVideos && minDurationMinutes > 0 {
			filteredByDuration++
			continue
		}
		candidates = append(candidates, ch)
	}

	scored := make([]Channel, 0, len(candidates))
	for _, ch := range candidates {
		s := computeScore(ch)
		if s.Total < minTotalScore {
			continue
		}
		ch.Score = s
		scored = append(scored, ch)
	}

	sort.Slice(scored, func(i, j int) bool { return scored[i].Score.Total > scored[j].Score.Total })
	if len(scored) > resultCount {
		scored = scored[:resultCount]
	}

	best := ""
	if len(scored) > 0 {
		best = scored[0].Name
	}

	return Result{
		Channels: scored,
		Summary: Summary{
			BestOpportunity:    best,
			FilteredByDuration: filteredByDuration,
			TotalCandidates:    len(aggs),
		},
	}, nil
}

func aggregateByChannel(items []scraper.SearchItem) map[string]*aggregate {
	out := make(map[string]*aggregate)
	for _, it := range items {
		if it.ChannelID == "" {
			continue
		}
		a, ok := out[it.ChannelID]
		if !ok {
			a = &aggregate{channelID: it.ChannelID, name: it.ChannelTitle}
			out[it.ChannelID] = a
		}
		a.sampleCount++
		a.videos = append(a.videos, it)
		if t, err := time.Parse(time.RFC3339, it.PublishedAt); err == nil && t.After(a.latestUpload) {
			a.latestUpload = t
		}
	}
	return out
}

// topBySampleCount returns up to n aggregates, sorted by sample count
// descending, channel id as a deterministic tiebreaker.
func topBySampleCount(aggs map[string]*aggregate, n int) []*aggregate {
	out := make([]*aggregate, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].sampleCount != out[j].sampleCount {
			return out[i].sampleCount > out[j].sampleCount
		}
		return out[i].channelID < out[j].channelID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// enrichChannels fetches one sample video's detail per channel (spec
// §4.8 step 3), pausing EnrichmentDelay between calls.
func enrichChannels(ctx context.Context, gw scraper.Gateway, aggs []*aggregate, minDurationMinutes float64) []Channel {
	out := make([]Channel, 0, len(aggs))
	for i, a := range aggs {
		if i > 0 {
			select {
			case <-time.After(EnrichmentDelay):
			case <-ctx.Done():
				return out
			}
		}

		var subscribers, totalViews int64
		var avgDurationMinutes float64

		if len(a.videos) > 0 {
			sample := a.videos[0]
			videoURL := sample.ChannelURL
			if sample.ID != "" {
				videoURL = "https://www.youtube.com/watch?v=" + sample.ID
			}
			if info, err := gw.GetVideoInfo(ctx, videoURL); err == nil {
				subscribers = info.ChannelFollowerCount
				totalViews = info.ViewCount * int64(a.sampleCount)
				avgDurationMinutes = float64(info.DurationSeconds) / 60.0
			}
		}

		verdict := contenttype.Analyze(toContentTypeChannel(a))

		out = append(out, Channel{
			ChannelID:          a.channelID,
			Name:               a.name,
			Subscribers:        subscribers,
			TotalViews:         totalViews,
			SampleVideoCount:   a.sampleCount,
			AvgDurationMinutes: avgDurationMinutes,
			HasLongVideos:      avgDurationMinutes >= minDurationMinutes,
			ContentType:        verdict.ContentType,
			FacelessScore:      verdict.FacelessScore,
		})
	}
	return out
}

func toContentTypeChannel(a *aggregate) contenttype.Channel {
	videos := make([]contenttype.Video, 0, len(a.videos))
	for _, v := range a.videos {
		videos = append(videos, contenttype.Video{Title: v.Title, Description: v.Description})
	}
	return contenttype.Channel{Title: a.name, Videos: videos}
}

// computeScore implements the RisingStarScore formula (spec §4.8 step 5).
func computeScore(ch Channel) Score {
	var viral float64
	if ch.Subscribers > 0 {
		viral = float64(ch.TotalViews) / float64(ch.Subscribers) / 10
		if viral > 40 {
			viral = 40
		}
	} else {
		viral = 20
	}

	var size float64
	switch {
	case ch.Subscribers == 0:
		size = 25
	case ch.Subscribers < 10_000:
		size = 30
	case ch.Subscribers < 50_000:
		size = 25
	case ch.Subscribers < 100_000:
		size = 20
	default:
		size = 10
	}

	var activity float64
	switch {
	case ch.SampleVideoCount >= 5:
		activity = 30
	case ch.SampleVideoCount >= 3:
		activity = 25
	case ch.SampleVideoCount >= 2:
		activity = 20
	default:
		activity = 15
	}

	total := viral + size + activity
	if total > 100 {
		total = 100
	}
	return Score{Viral: viral, Size: size, Activity: activity, Total: total}
}
