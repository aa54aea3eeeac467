package recommend

import (
	"context"
	"sort"

	"ytniche/domain/scorer"
)

// Scorer is the subset of C6 the recommendation engine depends on.
type Scorer interface {
	QuickScore(ctx context.Context, niche string) (float64, error)
	FullScore(ctx context.Context, niche string) (scorer.NicheScore, error)
}

const (
	phase1Count  = 8
	phase2Verify = 3
	phase2Quick  = 2
	resultCount  = 5
)

// Recommend implements the two-phase dataflow (spec §4.7, §9): generate
// variants, quick-screen the first 8, full-score-verify the top 3
// (degrading to quick score + ESTIMATED on failure or deadline pressure),
// append the next 2 as quick-scored ESTIMATED entries, return the top 5.
func Recommend(ctx context.Context, s Scorer, niche string, originalScore float64) []Recommendation {
	variants := GenerateVariants(niche)
	if len(variants) > phase1Count {
		variants = variants[:phase1Count]
	}

	type screened struct {
		niche string
		score float64
	}
	quick := make([]screened, 0, len(variants))
	for _, v := range variants {
		score, err := s.QuickScore(ctx, v)
		if err != nil {
			continue
		}
		quick = append(quick, screened{niche: v, score: score})
	}
	sort.Slice(quick, func(i, j int) bool { return quick[i].score > quick[j].score })

	verifyCount := phase2Verify
	if verifyCount > len(quick) {
		verifyCount = len(quick)
	}

	results := make([]Recommendation, 0, resultCount)
	for i := 0; i < verifyCount; i++ {
		cand := quick[i]

		if ctx.Err() != nil {
			results = append(results, newRecommendation(cand.niche, cand.score, originalScore, scorer.ConfidenceEstimated))
			continue
		}

		full, err := s.FullScore(ctx, cand.niche)
		if err != nil {
			results = append(results, newRecommendation(cand.niche, cand.score, originalScore, scorer.ConfidenceEstimated))
			continue
		}
		results = append(results, newRecommendation(cand.niche, full.Total, originalScore, scorer.ConfidenceHigh))
	}

	remainingStart := verifyCount
	remainingEnd := remainingStart + phase2Quick
	if remainingEnd > len(quick) {
		remainingEnd = len(quick)
	}
	for i := remainingStart; i < remainingEnd; i++ {
		cand := quick[i]
		results = append(results, newRecommendation(cand.niche, cand.score, originalScore, scorer.ConfidenceEstimated))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > resultCount {
		results = results[:resultCount]
	}
	return results
}

func newRecommendation(niche string, score, originalScore float64, conf scorer.Confidence) Recommendation {
	return Recommendation{
		Niche:      niche,
		Score:      score,
		Better:     score > originalScore,
		Confidence: conf,
	}
}
