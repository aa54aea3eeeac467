package scraper

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"ytniche/apperr"
	"ytniche/cache"
)

// SearchType selects which item kind a search targets, matching the
// scraper tool's own "video" / "channel" search-type flag.
type SearchType string

const (
	SearchVideos   SearchType = "video"
	SearchChannels SearchType = "channel"
)

// Gateway is the port the rest of the module depends on (spec §4.2, C2).
// The concrete adapter shells out to the external scraper binary; tests
// substitute a fake that implements this interface directly, the same
// port+adapter split the teacher uses for its own YouTube client.
type Gateway interface {
	Search(ctx context.Context, query string, maxResults int, kind SearchType) (SearchResult, error)
	GetChannel(ctx context.Context, channelID string) (ChannelSummary, error)
	GetVideoInfo(ctx context.Context, videoURL string) (VideoInfo, error)
	CallCount() int64
}

// Runner abstracts subprocess execution so tests can stub the scraper
// binary without touching os/exec directly.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// execRunner shells out to a real binary on PATH (or an absolute path).
type execRunner struct {
	binary string
}

func (r execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperr.Wrap(apperr.KindScraperTimeout, "scraper call timed out", err)
		}
		return nil, apperr.Wrap(apperr.KindScraperError, stderr.String(), err)
	}
	return stdout.Bytes(), nil
}

// adapter is the concrete Gateway backed by a Runner and the shared
// process cache (spec §4.1 C1 is shared across every gateway operation).
type adapter struct {
	run       Runner
	cache     *cache.Cache
	timeout   time.Duration
	log       zerolog.Logger
	callCount int64
}

// Config controls how the adapter invokes the scraper binary.
type Config struct {
	Binary  string        // path or PATH-resolvable name of the scraper tool
	Timeout time.Duration // per-call subprocess timeout, default 30s
	Cache   *cache.Cache
	Log     zerolog.Logger
}

// New constructs a Gateway backed by the real scraper binary (spec §4.2:
// "an external collaborator invoked as a subprocess").
func New(cfg Config) Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &adapter{
		run:     execRunner{binary: cfg.Binary},
		cache:   cfg.Cache,
		timeout: timeout,
		log:     cfg.Log,
	}
}

// newWithRunner is the test seam: build an adapter over an arbitrary
// Runner (e.g. a fake that returns canned JSON lines).
func newWithRunner(run Runner, c *cache.Cache, log zerolog.Logger) *adapter {
	return &adapter{run: run, cache: c, timeout: 30 * time.Second, log: log}
}

func (a *adapter) CallCount() int64 {
	return atomic.LoadInt64(&a.callCount)
}

func (a *adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

// Search runs a search of the given type, caching on (query, maxResults,
// kind) per spec §4.2's cache-key contract.
func (a *adapter) Search(ctx context.Context, query string, maxResults int, kind SearchType) (SearchResult, error) {
	key := cache.Key("search", map[string]any{
		"query": query,
		"max":   maxResults,
		"kind":  string(kind),
	})
	if cached, ok := a.cache.Get(key); ok {
		return cached.(SearchResult), nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	args := []string{
		"--dump-json",
		"--no-download",
		"--no-playlist",
		"--flat-playlist",
		"--playlist-end", fmt.Sprintf("%d", maxResults),
	}
	if kind == SearchChannels {
		args = append(args, fmt.Sprintf("ytsearch%d:%s channel", maxResults, query))
	} else {
		args = append(args, fmt.Sprintf("ytsearch%d:%s", maxResults, query))
	}

	out, err := a.run.Run(ctx, args...)
	atomic.AddInt64(&a.callCount, 1)
	if err != nil {
		return SearchResult{}, err
	}

	raws := parseJSONLines(out)
	if len(raws) == 0 {
		return SearchResult{}, apperr.New(apperr.KindScraperEmpty, "scraper returned no parseable results")
	}

	result := SearchResult{
		Items: map[ItemKind][]SearchItem{
			KindVideo:   make([]SearchItem, 0, len(raws)),
			KindChannel: make([]SearchItem, 0),
		},
		PageInfo: PageInfo{TotalResults: int64(len(raws))},
	}
	for _, r := range raws {
		if r.EstimatedTotal > result.PageInfo.TotalResults {
			result.PageInfo.TotalResults = r.EstimatedTotal
		}
		itemKind := KindVideo
		if kind == SearchChannels {
			itemKind = KindChannel
		}
		item := toSearchItem(r, itemKind)
		result.Items[itemKind] = append(result.Items[itemKind], item)
	}

	a.cache.Set(key, result)
	return result, nil
}

// GetChannel fetches a single channel's summary by probing a handful of
// its recent uploads (spec §4.2: the scraper tool has no direct
// "channel info" call, so the gateway derives one from a small playlist
// sample — mirrors the source's get_channel_info --playlist-items 1:5).
func (a *adapter) GetChannel(ctx context.Context, channelID string) (ChannelSummary, error) {
	key := cache.Key("channel", map[string]any{"channel_id": channelID})
	if cached, ok := a.cache.Get(key); ok {
		return cached.(ChannelSummary), nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	url := "https://www.youtube.com/channel/" + channelID + "/videos"
	args := []string{
		"--dump-json",
		"--no-download",
		"--flat-playlist",
		"--playlist-items", "1:5",
		url,
	}

	out, err := a.run.Run(ctx, args...)
	atomic.AddInt64(&a.callCount, 1)
	if err != nil {
		return ChannelSummary{}, apperr.Wrap(apperr.KindChannelUnavailable, channelID, err)
	}

	raws := parseJSONLines(out)
	if len(raws) == 0 {
		return ChannelSummary{}, apperr.New(apperr.KindChannelUnavailable, channelID)
	}

	summary := summarizeChannel(channelID, raws)
	a.cache.Set(key, summary)
	return summary, nil
}

// GetVideoInfo fetches rich metadata for a single video URL.
func (a *adapter) GetVideoInfo(ctx context.Context, videoURL string) (VideoInfo, error) {
	key := cache.Key("video_info", map[string]any{"url": videoURL})
	if cached, ok := a.cache.Get(key); ok {
		return cached.(VideoInfo), nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	args := []string{"--dump-json", "--no-download", "--no-playlist", videoURL}
	out, err := a.run.Run(ctx, args...)
	atomic.AddInt64(&a.callCount, 1)
	if err != nil {
		return VideoInfo{}, err
	}

	raws := parseJSONLines(out)
	if len(raws) == 0 {
		return VideoInfo{}, apperr.New(apperr.KindScraperEmpty, "no video info parsed")
	}

	info := toVideoInfo(raws[0])
	a.cache.Set(key, info)
	return info, nil
}

// summarizeChannel aggregates a small playlist sample into a
// ChannelSummary. Subscriber count comes straight from
// channel_follower_count when the scraper surfaces it; callers needing a
// heuristic fallback (spec §4.9, competitor analysis) apply it themselves
// when Subscribers comes back 0.
func summarizeChannel(channelID string, raws []rawItem) ChannelSummary {
	sum := ChannelSummary{ID: channelID, VideoCountInSample: len(raws)}

	var totalViews int64
	var totalDurationSec int64
	var durationSamples int
	for _, r := range raws {
		sum.Name = firstNonEmpty(sum.Name, r.Channel, r.Uploader)
		sum.HandleURL = firstNonEmpty(sum.HandleURL, channelURLFromItem(r))
		if r.ViewCount != nil {
			totalViews += *r.ViewCount
		}
		if r.Duration != nil {
			totalDurationSec += *r.Duration
			durationSamples++
		}
		if r.ChannelFollowerCount > sum.Subscribers {
			sum.Subscribers = r.ChannelFollowerCount
		}
		if t, err := time.Parse("20060102", r.UploadDate); err == nil {
			if t.After(sum.LatestUpload) {
				sum.LatestUpload = t
			}
		}
	}
	sum.AggregatedViews = totalViews
	if durationSamples > 0 {
		sum.AvgDurationMinutes = float64(totalDurationSec) / float64(durationSamples) / 60.0
		sum.HasLongVideos = totalDurationSec/int64(durationSamples) >= 40*60
	}
	return sum
}
