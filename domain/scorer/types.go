// Package scorer implements the five-factor niche scoring formulas
// (spec §4.6, C6). The factor math is pure; service.go gathers the inputs
// from the scraper, trends, and CPM components, which are injected as
// dependencies, and is the only file in the package that performs I/O.
package scorer

// Confidence marks whether a NicheScore came from a full evaluation or a
// cheap estimate that degraded under a deadline (spec §4.7).
type Confidence string

const (
	ConfidenceHigh      Confidence = "HIGH"
	ConfidenceEstimated Confidence = "ESTIMATED"
)

// Factor is one weighted sub-score plus its declared ceiling and a short
// provenance string describing how it was derived.
type Factor struct {
	Score      float64 `json:"score"`
	Max        float64 `json:"max"`
	Provenance string  `json:"provenance"`
}

// NicheScore is the full breakdown (spec §3).
type NicheScore struct {
	SearchVolume        Factor  `json:"search_volume"`
	Competition         Factor  `json:"competition"`
	Monetization        Factor  `json:"monetization"`
	ContentAvailability Factor  `json:"content_availability"`
	TrendMomentum       Factor  `json:"trend_momentum"`
	Total               float64 `json:"total"`
	Grade               string  `json:"grade"`
}

// Grade maps a total in [0, 100] to a letter grade (spec §4.6).
func Grade(total float64) string {
	switch {
	case total >= 90:
		return "A+"
	case total >= 85:
		return "A"
	case total >= 80:
		return "A-"
	case total >= 75:
		return "B+"
	case total >= 70:
		return "B"
	case total >= 65:
		return "B-"
	case total >= 60:
		return "C+"
	case total >= 55:
		return "C"
	default:
		return "D"
	}
}

// Inputs is the fully-resolved metrics record the factor formulas
// consume (spec §8 scenario 4 names this shape directly). Growth is nil
// when no views were observed in the sample (spec §4.6).
type Inputs struct {
	Volume           float64
	Trend            int
	CPM              float64
	ChannelCount     int
	Growth           *float64
	TotalResults     int64
	Videos           int
	ChannelsInSample int
}
