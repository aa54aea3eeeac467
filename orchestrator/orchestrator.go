// Package orchestrator composes C6-C9 for the HTTP surface (spec §4,
// C11): the main niche's full score, its recommendation variants, its
// rising-star channels, and (on a separate endpoint) its competitor
// saturation — sharing the C1 cache singleton and a request-level
// deadline across every stage.
package orchestrator

import (
	"context"
	"time"

	"ytniche/cache"
	"ytniche/discovery/competitor"
	"ytniche/discovery/risingstar"
	"ytniche/domain/recommend"
	"ytniche/domain/scorer"
	"ytniche/platform/scraper"
	"ytniche/platform/trends"
)

// Performance is the timing/usage block attached to /api/analyze
// (spec §6 names the field but not its shape; this is the interpretive
// choice recorded in the grounding ledger).
type Performance struct {
	ElapsedMs    int64 `json:"elapsed_ms"`
	ScraperCalls int64 `json:"scraper_calls"`
	TrendsCalls  int64 `json:"trends_calls"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
}

// AnalyzeResult is the full /api/analyze response body.
type AnalyzeResult struct {
	Niche                 string                      `json:"niche"`
	NicheScore            scorer.NicheScore           `json:"niche_score"`
	Recommendations       []recommend.Recommendation  `json:"recommendations"`
	RisingStarChannels    risingstar.Result           `json:"rising_star_channels"`
	RisingStarUnavailable bool                        `json:"rising_star_unavailable,omitempty"`
	Performance           Performance                 `json:"performance"`
}

// Orchestrator holds the shared singletons every request dispatches
// through (spec §2 control flow, §5 "all components share C1").
type Orchestrator struct {
	Gateway         scraper.Gateway
	Trends          *trends.Client
	Scorer          *scorer.Service
	Cache           *cache.Cache
	RequestDeadline time.Duration
}

// New constructs an Orchestrator wired to the given collaborators.
func New(gw scraper.Gateway, tr *trends.Client, sc *scorer.Service, c *cache.Cache, deadline time.Duration) *Orchestrator {
	if deadline <= 0 {
		deadline = 60 * time.Second
	}
	return &Orchestrator{Gateway: gw, Trends: tr, Scorer: sc, Cache: c, RequestDeadline: deadline}
}

// Analyze runs the full pipeline for /api/analyze (spec §2 control flow:
// "calls C6 ... for the main niche, C7 ... for variants, and C8 ... for
// channels"). Per-stage failures degrade rather than abort: only the main
// niche's full score is fatal (spec §7).
func (o *Orchestrator) Analyze(ctx context.Context, niche string, minDurationMinutes float64) (AnalyzeResult, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, o.RequestDeadline)
	defer cancel()

	ns, err := o.Scorer.FullScore(ctx, niche)
	if err != nil {
		return AnalyzeResult{}, err
	}

	recs := recommend.Recommend(ctx, o.Scorer, niche, ns.Total)

	var rising risingstar.Result
	risingUnavailable := false
	if ctx.Err() == nil {
		res, err := risingstar.Discover(ctx, o.Gateway, niche, 50, minDurationMinutes)
		if err != nil {
			risingUnavailable = true
		} else {
			rising = res
		}
	} else {
		risingUnavailable = true
	}

	perf := Performance{
		ElapsedMs:    time.Since(start).Milliseconds(),
		ScraperCalls: o.Gateway.CallCount(),
		TrendsCalls:  o.Trends.CallCount(),
	}
	if o.Cache != nil {
		stats := o.Cache.Stats()
		perf.CacheHits = stats.Hits
		perf.CacheMisses = stats.Misses
	}

	return AnalyzeResult{
		Niche:                 niche,
		NicheScore:            ns,
		Recommendations:       recs,
		RisingStarChannels:    rising,
		RisingStarUnavailable: risingUnavailable,
		Performance:           perf,
	}, nil
}

// Channels runs C8 alone for /api/channels.
func (o *Orchestrator) Channels(ctx context.Context, niche string, minDurationMinutes float64) (risingstar.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, o.RequestDeadline)
	defer cancel()
	return risingstar.Discover(ctx, o.Gateway, niche, 50, minDurationMinutes)
}

// Competitors runs C9 alone for /api/competitors.
func (o *Orchestrator) Competitors(ctx context.Context, niche string) (competitor.SaturationReport, error) {
	ctx, cancel := context.WithTimeout(ctx, o.RequestDeadline)
	defer cancel()
	return competitor.Analyze(ctx, o.Gateway, niche)
}

// CallCounts reports the monotonic scraper and trends call counters
// (spec §6 /api/stats api_calls block).
func (o *Orchestrator) CallCounts() (scraperCalls, trendsCalls int64) {
	return o.Gateway.CallCount(), o.Trends.CallCount()
}
