package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ytniche/cache"
	"ytniche/domain/scorer"
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
func (f *fakeGateway) CallCount() int64 { return 3 }

func views(n int64) *int64 { return &n }

type stubProvider struct{}

func (stubProvider) Average(ctx context.Context, keyword string) (int, error) { return 60, nil }

func sampleResult() scraper.SearchResult {
	return scraper.SearchResult{
		Items: map[scraper.ItemKind][]scraper.SearchItem{
			scraper.KindVideo: {
				{ChannelID: "c1", ChannelTitle: "Channel One", ID: "v1", ViewCount: views(50000)},
				{ChannelID: "c2", ChannelTitle: "Channel Two", ID: "v2", ViewCount: views(20000)},
			},
		},
		PageInfo: scraper.PageInfo{TotalResults: 5000},
	}
}

func newTestOrchestrator(gw scraper.Gateway) *Orchestrator {
	tr := trends.New(stubProvider{}, zerolog.Nop())
	sc := scorer.NewService(gw, tr, 1)
	c := cache.New(time.Hour)
	return New(gw, tr, sc, c, 5*time.Second)
}

func TestAnalyzeReturnsFullResult(t *testing.T) {
	gw := &fakeGateway{result: sampleResult()}
	o := newTestOrchestrator(gw)

	res, err := o.Analyze(context.Background(), "ai tutorial for beginners", 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NicheScore.Total <= 0 {
		t.Fatalf("expected positive niche score total")
	}
	if res.Niche != "ai tutorial for beginners" {
		t.Fatalf("unexpected niche echoed: %s", res.Niche)
	}
	if res.Performance.ScraperCalls == 0 {
		t.Fatalf("expected scraper call count to be propagated")
	}
}

func TestAnalyzePropagatesMainScoringFailure(t *testing.T) {
	gw := &fakeGateway{err: errSentinel}
	o := newTestOrchestrator(gw)

	_, err := o.Analyze(context.Background(), "niche", 40)
	if err == nil {
		t.Fatalf("expected error from failed main scoring")
	}
}

func TestChannelsDelegatesToRisingStar(t *testing.T) {
	gw := &fakeGateway{result: sampleResult()}
	o := newTestOrchestrator(gw)

	_, err := o.Channels(context.Background(), "niche", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompetitorsDelegatesToCompetitorAnalyzer(t *testing.T) {
	gw := &fakeGateway{result: sampleResult()}
	o := newTestOrchestrator(gw)

	report, err := o.Competitors(context.Background(), "niche")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ChannelCount != 2 {
		t.Fatalf("expected 2 channels, got %d", report.ChannelCount)
	}
}

var errSentinel = &scraperError{"boom"}

type scraperError struct{ msg string }

func (e *scraperError) Error() string { return e.msg }
