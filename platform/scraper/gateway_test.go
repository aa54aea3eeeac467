package scraper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ytniche/cache"
)

type fakeRunner struct {
	output []byte
	err    error
	calls  int
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func newTestAdapter(run Runner) *adapter {
	return newWithRunner(run, cache.New(time.Hour), zerolog.Nop())
}

func TestSearchParsesVideoLines(t *testing.T) {
	lines := strings.Join([]string{
		`{"id":"abc12345678","title":"Video One","channel":"Chan A","uploader_id":"@chana","upload_date":"20240115","view_count":1000}`,
		`{"id":"def12345678","title":"Video Two","channel":"Chan B","upload_date":"20240201","view_count":2000}`,
	}, "\n")
	run := &fakeRunner{output: []byte(lines)}
	a := newTestAdapter(run)

	res, err := a.Search(context.Background(), "ai tutorials", 10, SearchVideos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	videos := res.Items[KindVideo]
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].ChannelHandle != "@chana" {
		t.Fatalf("expected handle @chana, got %q", videos[0].ChannelHandle)
	}
	if videos[0].PublishedAt == "" {
		t.Fatalf("expected non-empty published_at")
	}
	if a.CallCount() != 1 {
		t.Fatalf("expected 1 subprocess call, got %d", a.CallCount())
	}
}

func TestSearchCachesResult(t *testing.T) {
	run := &fakeRunner{output: []byte(`{"id":"abc12345678","title":"V","view_count":5}`)}
	a := newTestAdapter(run)

	ctx := context.Background()
	if _, err := a.Search(ctx, "crypto", 5, SearchVideos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Search(ctx, "crypto", 5, SearchVideos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.calls != 1 {
		t.Fatalf("expected 1 subprocess invocation due to caching, got %d", run.calls)
	}
}

func TestSearchEmptyOutputIsError(t *testing.T) {
	run := &fakeRunner{output: []byte("\n\n")}
	a := newTestAdapter(run)

	_, err := a.Search(context.Background(), "nothing", 5, SearchVideos)
	if err == nil {
		t.Fatalf("expected error on empty scraper output")
	}
}

func TestSearchDropsUnparseableLines(t *testing.T) {
	lines := strings.Join([]string{
		`{"id":"abc12345678","title":"Good","view_count":1}`,
		`not json at all`,
		`{"id":"def12345678","title":"Also Good","view_count":2}`,
	}, "\n")
	run := &fakeRunner{output: []byte(lines)}
	a := newTestAdapter(run)

	res, err := a.Search(context.Background(), "x", 5, SearchVideos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items[KindVideo]) != 2 {
		t.Fatalf("expected 2 parsed videos, got %d", len(res.Items[KindVideo]))
	}
}

func TestGetChannelAggregatesSample(t *testing.T) {
	lines := strings.Join([]string{
		`{"id":"v1","channel":"Chan","uploader_id":"@chan","upload_date":"20240101","view_count":100,"duration":600,"channel_follower_count":5000}`,
		`{"id":"v2","channel":"Chan","uploader_id":"@chan","upload_date":"20240201","view_count":300,"duration":4800,"channel_follower_count":5000}`,
	}, "\n")
	run := &fakeRunner{output: []byte(lines)}
	a := newTestAdapter(run)

	sum, err := a.GetChannel(context.Background(), "UCxyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.AggregatedViews != 400 {
		t.Fatalf("expected aggregated views 400, got %d", sum.AggregatedViews)
	}
	if sum.Subscribers != 5000 {
		t.Fatalf("expected subscribers 5000, got %d", sum.Subscribers)
	}
	if !sum.HasLongVideos {
		t.Fatalf("expected HasLongVideos true (avg duration 45min)")
	}
}

func TestGetChannelUnavailableOnEmptySample(t *testing.T) {
	run := &fakeRunner{output: []byte("")}
	a := newTestAdapter(run)

	_, err := a.GetChannel(context.Background(), "UCdead")
	if err == nil {
		t.Fatalf("expected channel_unavailable error")
	}
}

func TestGetVideoInfoParsesSingleRecord(t *testing.T) {
	run := &fakeRunner{output: []byte(`{"id":"v1","title":"T","duration":120,"view_count":999,"uploader":"Chan","upload_date":"20240115"}`)}
	a := newTestAdapter(run)

	info, err := a.GetVideoInfo(context.Background(), "https://youtu.be/v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.DurationSeconds != 120 || info.ViewCount != 999 {
		t.Fatalf("unexpected video info: %+v", info)
	}
}
