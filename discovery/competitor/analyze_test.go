package competitor

import (
	"context"
	"errors"
	"testing"

	"ytniche/platform/scraper"
)

type fakeGateway struct {
	result     scraper.SearchResult
	searchErr  error
	channels   map[string]scraper.ChannelSummary
	channelErr map[string]error
}

func (f *fakeGateway) Search(ctx context.Context, query string, maxResults int, kind scraper.SearchType) (scraper.SearchResult, error) {
	return f.result, f.searchErr
}

func (f *fakeGateway) GetChannel(ctx context.Context, channelID string) (scraper.ChannelSummary, error) {
	if err, ok := f.channelErr[channelID]; ok {
		return scraper.ChannelSummary{}, err
	}
	if s, ok := f.channels[channelID]; ok {
		return s, nil
	}
	return scraper.ChannelSummary{}, errors.New("not found")
}

func (f *fakeGateway) GetVideoInfo(ctx context.Context, videoURL string) (scraper.VideoInfo, error) {
	return scraper.VideoInfo{}, nil
}

func (f *fakeGateway) CallCount() int64 { return 0 }

func views(n int64) *int64 { return &n }

func TestAnalyzeReturnsNoResultsError(t *testing.T) {
	gw := &fakeGateway{result: scraper.SearchResult{Items: map[scraper.ItemKind][]scraper.SearchItem{}}}
	_, err := Analyze(context.Background(), gw, "empty niche")
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestAnalyzeAggregatesAndEnriches(t *testing.T) {
	result := scraper.SearchResult{
		Items: map[scraper.ItemKind][]scraper.SearchItem{
			scraper.KindVideo: {
				{ChannelID: "c1", ChannelTitle: "Channel One", ViewCount: views(100000)},
				{ChannelID: "c1", ChannelTitle: "Channel One", ViewCount: views(200000)},
				{ChannelID: "c2", ChannelTitle: "Channel Two", ViewCount: views(5000)},
			},
		},
	}
	gw := &fakeGateway{
		result: result,
		channels: map[string]scraper.ChannelSummary{
			"c1": {ID: "c1", Subscribers: 250000},
		},
	}
	report, err := Analyze(context.Background(), gw, "niche")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ChannelCount != 2 {
		t.Fatalf("expected 2 channels, got %d", report.ChannelCount)
	}
	if len(report.TopCompetitors) != 2 {
		t.Fatalf("expected 2 enriched competitors, got %d", len(report.TopCompetitors))
	}
	if report.TopCompetitors[0].ID != "c1" {
		t.Fatalf("expected c1 ranked first by subscribers, got %s", report.TopCompetitors[0].ID)
	}
	if report.TopCompetitors[0].SubscriberTier != TierLarge {
		t.Fatalf("expected c1 classified as large tier, got %s", report.TopCompetitors[0].SubscriberTier)
	}
}

func TestAnalyzeFallsBackToHeuristicOnLookupFailure(t *testing.T) {
	result := scraper.SearchResult{
		Items: map[scraper.ItemKind][]scraper.SearchItem{
			scraper.KindVideo: {
				{ChannelID: "c1", ChannelTitle: "Channel One", ViewCount: views(600000)},
			},
		},
	}
	gw := &fakeGateway{result: result, channelErr: map[string]error{"c1": errors.New("unavailable")}}
	report, err := Analyze(context.Background(), gw, "niche")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TopCompetitors[0].Subscribers != int64(float64(600000)*0.05) {
		t.Fatalf("expected heuristic subscriber estimate, got %d", report.TopCompetitors[0].Subscribers)
	}
}

func TestEstimateSubscribersBands(t *testing.T) {
	cases := []struct {
		avgViews int64
		wantK    float64
	}{
		{600_000, 0.05},
		{100_000, 0.08},
		{10_000, 0.12},
		{1_000, 0.15},
	}
	for _, c := range cases {
		got := estimateSubscribers(c.avgViews)
		want := int64(float64(c.avgViews) * c.wantK)
		if got != want {
			t.Fatalf("estimateSubscribers(%d) = %d, want %d", c.avgViews, got, want)
		}
	}
}

func TestClassifyTierBoundaries(t *testing.T) {
	cases := []struct {
		subs int64
		want SubscriberTier
	}{
		{500, TierMicro},
		{5000, TierSmall},
		{50000, TierMedium},
		{500000, TierLarge},
	}
	for _, c := range cases {
		if got := classifyTier(c.subs); got != c.want {
			t.Fatalf("classifyTier(%d) = %s, want %s", c.subs, got, c.want)
		}
	}
}

func TestSaturationLevelBands(t *testing.T) {
	cases := []struct {
		count int
		want  SaturationLevel
	}{
		{0, SaturationUnknown},
		{5, SaturationLow},
		{30, SaturationMedium},
		{60, SaturationHigh},
	}
	for _, c := range cases {
		report := buildReport(c.count, nil)
		if report.SaturationLevel != c.want {
			t.Fatalf("buildReport(%d) level = %s, want %s", c.count, report.SaturationLevel, c.want)
		}
	}
}
