// Package recommend implements the two-phase recommendation engine
// (spec §4.7, C7): generate niche variants, cheaply screen them, then
// verify the top candidates with full scoring under a deadline.
package recommend

import "ytniche/domain/scorer"

// Recommendation is one ranked variant of the original niche.
type Recommendation struct {
	Niche      string            `json:"niche"`
	Score      float64           `json:"score"`
	Better     bool              `json:"better"`
	Confidence scorer.Confidence `json:"confidence"`
}
