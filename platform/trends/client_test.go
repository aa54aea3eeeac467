package trends

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type stubProvider struct {
	score int
	err   error
	calls int
}

func (s *stubProvider) Average(ctx context.Context, keyword string) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.score, nil
}

func TestScoreUsesProviderOnSuccess(t *testing.T) {
	p := &stubProvider{score: 88}
	c := New(p, zerolog.Nop())
	got := c.Score(context.Background(), "ai tools")
	if got != 88 {
		t.Fatalf("expected 88, got %d", got)
	}
	if p.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", p.calls)
	}
}

func TestScoreCachesResult(t *testing.T) {
	p := &stubProvider{score: 50}
	c := New(p, zerolog.Nop())
	ctx := context.Background()
	c.Score(ctx, "crypto")
	c.Score(ctx, "crypto")
	if p.calls != 1 {
		t.Fatalf("expected provider called once due to cache, got %d", p.calls)
	}
}

func TestScoreFallsBackOnProviderError(t *testing.T) {
	p := &stubProvider{err: errors.New("rate limited")}
	c := New(p, zerolog.Nop()).WithRandSource(rand.NewSource(42))
	got := c.Score(context.Background(), "ai renders")
	if got < 0 || got > 100 {
		t.Fatalf("expected score in [0,100], got %d", got)
	}
}

func TestFallbackScoreMatchesKeywordTable(t *testing.T) {
	c := New(nil, zerolog.Nop()).WithRandSource(rand.NewSource(7))
	got := c.fallbackScore("best ai tools 2026")
	if got < 70 || got > 100 {
		t.Fatalf("expected ai-seeded score in range, got %d", got)
	}
}

func TestFallbackScoreUniformWhenNoMatch(t *testing.T) {
	c := New(nil, zerolog.Nop()).WithRandSource(rand.NewSource(7))
	got := c.fallbackScore("zzz nonmatching keyword qqq")
	if got < 40 || got > 60 {
		t.Fatalf("expected uniform fallback in [40,60], got %d", got)
	}
}

func TestWaitForRateLimitEnforcesMinInterval(t *testing.T) {
	p := &stubProvider{score: 10}
	c := New(p, zerolog.Nop())
	c.limiter = rate.NewLimiter(rate.Every(30*time.Millisecond), 1)

	ctx := context.Background()
	start := time.Now()
	c.Score(ctx, "first")
	c.Score(ctx, "second")
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected rate limit to introduce delay, elapsed=%v", elapsed)
	}
}
