// Package trends wraps an external trend-popularity provider (spec §4.3,
// C3), falling back to a seeded keyword heuristic when the provider is
// unavailable or returns nothing usable.
package trends

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"ytniche/cache"
)

// Provider is the network collaborator: given a keyword, returns its
// 12-month average popularity. Any error sends the client to its keyword
// fallback heuristic.
type Provider interface {
	Average(ctx context.Context, keyword string) (int, error)
}

// Client exposes Score, the only public operation (spec §4.3).
type Client struct {
	provider Provider
	cache    *cache.Cache
	log      zerolog.Logger

	mu        sync.Mutex
	limiter   *rate.Limiter
	callCount int64
	rng       *rand.Rand
}

// fallbackTTL is longer than the scraper's default one-hour cache TTL; heuristic and
// provider scores alike are only trusted for a few hours (spec §4.3).
const fallbackTTL = 4 * time.Hour

// keywordSeeds maps a substring to a seed popularity score. Order matters:
// the first matching substring wins (spec §4.3), so more specific terms
// are listed ahead of generic ones.
var keywordSeeds = []struct {
	substr string
	seed   int
}{
	{"artificial intelligence", 78},
	{"ai", 75},
	{"crypto", 70},
	{"bitcoin", 68},
	{"tutorial", 60},
	{"how to", 58},
	{"fitness", 50},
	{"workout", 48},
	{"cooking", 45},
	{"recipe", 44},
	{"gaming", 55},
	{"finance", 52},
	{"investing", 52},
	{"travel", 47},
	{"review", 42},
	{"news", 40},
}

// New constructs a Client. Its Cache uses the fixed fallbackTTL, which is
// independent of the scraper's — spec §4.1 explicitly disallows
// a shared-storage/different-TTL scratch hack, so trends gets its own
// *cache.Cache instance entirely.
func New(provider Provider, log zerolog.Logger) *Client {
	return &Client{
		provider: provider,
		cache:    cache.New(fallbackTTL),
		log:      log,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		rng:      rand.New(rand.NewSource(1)),
	}
}

// WithRandSource overrides the random source used for fallback jitter,
// for deterministic tests.
func (c *Client) WithRandSource(src rand.Source) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng = rand.New(src)
	return c
}

func (c *Client) CallCount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// Score returns the keyword's popularity in [0, 100] (spec §4.3).
func (c *Client) Score(ctx context.Context, keyword string) int {
	key := cache.Key("trends_score", map[string]any{"keyword": keyword})
	if cached, ok := c.cache.Get(key); ok {
		return cached.(int)
	}

	c.waitForRateLimit(ctx)

	score, err := c.callProvider(ctx, keyword)
	if err != nil {
		c.log.Warn().Err(err).Str("keyword", keyword).Msg("trends provider unavailable, using fallback")
		score = c.fallbackScore(keyword)
	}

	c.cache.Set(key, score)
	return score
}

// waitForRateLimit enforces a minimum 1s gap between provider attempts
// (spec §4.3) via a token-bucket limiter, honoring ctx cancellation.
func (c *Client) waitForRateLimit(ctx context.Context) {
	_ = c.limiter.Wait(ctx)
}

func (c *Client) callProvider(ctx context.Context, keyword string) (int, error) {
	if c.provider == nil {
		return 0, errNoProvider
	}
	score, err := c.provider.Average(ctx, keyword)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	c.callCount++
	c.mu.Unlock()
	return score, nil
}

// fallbackScore implements the keyword-table heuristic (spec §4.3): the
// first matching substring's seed, jittered by [-5, +10] and capped at
// 100; a uniform [40, 60] draw when nothing matches.
func (c *Client) fallbackScore(keyword string) int {
	lower := strings.ToLower(keyword)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range keywordSeeds {
		if strings.Contains(lower, e.substr) {
			jitter := c.rng.Intn(16) - 5 // [-5, 10]
			score := e.seed + jitter
			if score > 100 {
				score = 100
			}
			if score < 0 {
				score = 0
			}
			return score
		}
	}
	return 40 + c.rng.Intn(21) // [40, 60]
}

type providerlessError struct{}

func (providerlessError) Error() string { return "trends: no provider configured" }

var errNoProvider = providerlessError{}
