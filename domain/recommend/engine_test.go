package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ytniche/domain/scorer"
)

type fakeScorer struct {
	quickScores map[string]float64
	fullFails   map[string]bool
}

func (f *fakeScorer) QuickScore(ctx context.Context, niche string) (float64, error) {
	if s, ok := f.quickScores[niche]; ok {
		return s, nil
	}
	return 40, nil
}

func (f *fakeScorer) FullScore(ctx context.Context, niche string) (scorer.NicheScore, error) {
	if f.fullFails[niche] {
		return scorer.NicheScore{}, fmt.Errorf("scoring failed")
	}
	q, _ := f.QuickScore(ctx, niche)
	return scorer.NicheScore{Total: q + 5}, nil
}

func TestRecommendReturnsTopFive(t *testing.T) {
	fs := &fakeScorer{quickScores: map[string]float64{}}
	recs := Recommend(context.Background(), fs, "ai tutorial for beginners", 50)
	if len(recs) == 0 {
		t.Fatalf("expected at least one recommendation")
	}
	if len(recs) > 5 {
		t.Fatalf("expected at most 5 recommendations, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Score < recs[i].Score {
			t.Fatalf("expected descending score order")
		}
	}
}

func TestRecommendDegradesOnFullScoreFailure(t *testing.T) {
	variants := GenerateVariants("ai tutorial for beginners")
	fs := &fakeScorer{quickScores: map[string]float64{}, fullFails: map[string]bool{}}
	if len(variants) > 0 {
		fs.fullFails[variants[0]] = true
	}
	recs := Recommend(context.Background(), fs, "ai tutorial for beginners", 50)
	foundEstimated := false
	for _, r := range recs {
		if r.Confidence == scorer.ConfidenceEstimated {
			foundEstimated = true
		}
	}
	if !foundEstimated {
		t.Fatalf("expected at least one ESTIMATED confidence entry")
	}
}

func TestRecommendDegradesUnderExpiredDeadline(t *testing.T) {
	fs := &fakeScorer{quickScores: map[string]float64{}}
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	recs := Recommend(ctx, fs, "ai tutorial for beginners", 50)
	for _, r := range recs[:min(3, len(recs))] {
		if r.Confidence == scorer.ConfidenceHigh {
			t.Fatalf("expected degraded confidence under expired deadline, got HIGH for %s", r.Niche)
		}
	}
}

func TestRecommendMarksBetterFlag(t *testing.T) {
	fs := &fakeScorer{quickScores: map[string]float64{}}
	recs := Recommend(context.Background(), fs, "ai tutorial for beginners", 1000)
	for _, r := range recs {
		if r.Better {
			t.Fatalf("expected no recommendation to beat an artificially high original score")
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
