package scorer

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"ytniche/platform/scraper"
	"ytniche/platform/trends"
)

type fakeGateway struct {
	result scraper.SearchResult
	err    error
}

func (f *fakeGateway) Search(ctx context.Context, query string, maxResults int, kind scraper.SearchType) (scraper.SearchResult, error) {
	return f.result, f.err
}
func (f *fakeGateway) GetChannel(ctx context.Context, channelID string) (scraper.ChannelSummary, error) {
	return scraper.ChannelSummary{}, nil
}
func (f *fakeGateway) GetVideoInfo(ctx context.Context, videoURL string) (scraper.VideoInfo, error) {
	return scraper.VideoInfo{}, nil
}
func (f *fakeGateway) CallCount() int64 { return 0 }

func views(n int64) *int64 { return &n }

func sampleResult() scraper.SearchResult {
	return scraper.SearchResult{
		Items: map[scraper.ItemKind][]scraper.SearchItem{
			scraper.KindVideo: {
				{Kind: scraper.KindVideo, ID: "v1", ChannelID: "c1", ViewCount: views(500000)},
				{Kind: scraper.KindVideo, ID: "v2", ChannelID: "c2", ViewCount: views(100000)},
				{Kind: scraper.KindVideo, ID: "v3", ChannelID: "c1", ViewCount: views(50000)},
			},
		},
		PageInfo: scraper.PageInfo{TotalResults: 8000},
	}
}

func TestQuickScoreReturnsBoundedTotal(t *testing.T) {
	gw := &fakeGateway{result: sampleResult()}
	svc := NewService(gw, nil, 1)

	score, err := svc.QuickScore(context.Background(), "ai tools for creators")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score <= 0 {
		t.Fatalf("expected positive score, got %f", score)
	}
}

func TestQuickScorePropagatesSearchError(t *testing.T) {
	gw := &fakeGateway{err: scraperErr}
	svc := NewService(gw, nil, 1)
	_, err := svc.QuickScore(context.Background(), "x")
	if err == nil {
		t.Fatalf("expected error propagated from gateway")
	}
}

func TestFullScoreComputesAllFactors(t *testing.T) {
	gw := &fakeGateway{result: sampleResult()}
	provider := &stubTrendProvider{score: 80}
	tc := trends.New(provider, zerolog.Nop())
	svc := NewService(gw, tc, 1)

	score, err := svc.FullScore(context.Background(), "personal finance tips")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Total <= 0 || score.Total > 100 {
		t.Fatalf("expected total in (0,100], got %f", score.Total)
	}
	if score.Grade == "" {
		t.Fatalf("expected non-empty grade")
	}
}

func TestEstimateTrendFromKeywords(t *testing.T) {
	if got := estimateTrendFromKeywords("AI Tools Review"); got != 75 {
		t.Fatalf("expected 75 for ai keyword, got %d", got)
	}
	if got := estimateTrendFromKeywords("zzz nonmatching"); got != 50 {
		t.Fatalf("expected default 50, got %d", got)
	}
}

func TestUniqueChannelCount(t *testing.T) {
	items := sampleResult().AllItems()
	if n := uniqueChannelCount(items); n != 2 {
		t.Fatalf("expected 2 unique channels, got %d", n)
	}
}

func TestTopViewCountsLimitsAndFilters(t *testing.T) {
	items := sampleResult().AllItems()
	got := topViewCounts(items, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 view counts, got %d", len(got))
	}
}

type stubTrendProvider struct {
	score int
}

func (s *stubTrendProvider) Average(ctx context.Context, keyword string) (int, error) {
	return s.score, nil
}

type testError string

func (e testError) Error() string { return string(e) }

const scraperErr = testError("scraper unavailable")
