package competitor

import (
	"context"
	"errors"
	"sort"

	"ytniche/platform/scraper"
)

// ErrNoResults is returned when the initial search yields zero items.
var ErrNoResults = errors.New("no_results")

const (
	maxSearchResults = 30
	enrichTopN       = 3
	topCompetitors   = 5
)

type aggregate struct {
	channelID  string
	name       string
	totalViews int64
	videoCount int
}

// Analyze implements the competitor saturation pipeline (spec §4.9).
func Analyze(ctx context.Context, gw scraper.Gateway, niche string) (SaturationReport, error) {
	searchRes, err := gw.Search(ctx, niche, maxSearchResults, scraper.SearchVideos)
	if err != nil {
		return SaturationReport{}, err
	}
	items := searchRes.Items[scraper.KindVideo]
	if len(items) == 0 {
		return SaturationReport{}, ErrNoResults
	}

	aggs := aggregateByChannel(items)
	ordered := sortByAggregatedViews(aggs)

	enriched := enrichTop(ctx, gw, ordered)

	report := buildReport(len(ordered), enriched)
	return report, nil
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
		a.videoCount++
		if it.ViewCount != nil {
			a.totalViews += *it.ViewCount
		}
	}
	return out
}

func sortByAggregatedViews(aggs map[string]*aggregate) []*aggregate {
	out := make([]*aggregate, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].totalViews != out[j].totalViews {
			return out[i].totalViews > out[j].totalViews
		}
		return out[i].channelID < out[j].channelID
	})
	return out
}

// enrichTop resolves subscriber counts for the top N aggregated channels
// via C2.GetChannel, falling back to a views-per-subscriber heuristic
// when the lookup fails (spec §4.9).
func enrichTop(ctx context.Context, gw scraper.Gateway, ordered []*aggregate) []Competitor {
	n := enrichTopN
	if n > len(ordered) {
		n = len(ordered)
	}

	out := make([]Competitor, 0, n)
	for _, a := range ordered[:n] {
		avgViews := int64(0)
		if a.videoCount > 0 {
			avgViews = a.totalViews / int64(a.videoCount)
		}

		var subscribers int64
		summary, err := gw.GetChannel(ctx, a.channelID)
		if err == nil && summary.Subscribers > 0 {
			subscribers = summary.Subscribers
		} else {
			subscribers = estimateSubscribers(avgViews)
		}

		out = append(out, Competitor{
			Name:           a.name,
			ID:             a.channelID,
			Subscribers:    subscribers,
			AvgViews:       avgViews,
			VideoCount:     a.videoCount,
			SubscriberTier: classifyTier(subscribers),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Subscribers != out[j].Subscribers {
			return out[i].Subscribers > out[j].Subscribers
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// estimateSubscribers applies the avg_views x k heuristic when a direct
// channel lookup fails (spec §4.9).
func estimateSubscribers(avgViews int64) int64 {
	var k float64
	switch {
	case avgViews > 500_000:
		k = 0.05
	case avgViews > 50_000:
		k = 0.08
	case avgViews > 5_000:
		k = 0.12
	default:
		k = 0.15
	}
	return int64(float64(avgViews) * k)
}

func classifyTier(subscribers int64) SubscriberTier {
	switch {
	case subscribers < 1_000:
		return TierMicro
	case subscribers < 10_000:
		return TierSmall
	case subscribers < 100_000:
		return TierMedium
	default:
		return TierLarge
	}
}

func buildReport(channelCount int, enriched []Competitor) SaturationReport {
	var level SaturationLevel
	switch {
	case channelCount == 0:
		level = SaturationUnknown
	case channelCount < 10:
		level = SaturationLow
	case channelCount < 50:
		level = SaturationMedium
	default:
		level = SaturationHigh
	}

	breakdown := TierBreakdown{}
	for _, c := range enriched {
		switch c.SubscriberTier {
		case TierMicro:
			breakdown.Micro++
		case TierSmall:
			breakdown.Small++
		case TierMedium:
			breakdown.Medium++
		case TierLarge:
			breakdown.Large++
		}
	}

	top := enriched
	if len(top) > topCompetitors {
		top = top[:topCompetitors]
	}

	saturationScore := channelCount * 2
	if saturationScore > 100 {
		saturationScore = 100
	}

	return SaturationReport{
		SaturationLevel: level,
		SaturationScore: saturationScore,
		ChannelCount:    channelCount,
		TierBreakdown:   breakdown,
		TopCompetitors:  top,
	}
}
