// Package cpm estimates revenue-per-thousand-views for a niche phrase
// using a hierarchical match cascade over a static category database,
// then applies geographic and seasonal adjustments (spec §4.4, C4).
package cpm

// Adjustments records the multipliers applied to an Estimate's base CPM.
type Adjustments struct {
	GeographicMultiplier float64 `json:"geographic_multiplier"`
	SeasonalMultiplier   float64 `json:"seasonal_multiplier"`
	Country              string  `json:"country"`
	Month                int     `json:"month"`
}

// Range is a (lo, hi) CPM bound, scaled by the same multipliers as the
// point estimate.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Estimate is the full CPM breakdown returned by EstimateCPM
// (spec §3 CPMEstimate).
type Estimate struct {
	BaseCPM        float64     `json:"base_cpm"`
	CPM            float64     `json:"cpm"`
	CPMRange       Range       `json:"cpm_range"`
	Confidence     float64     `json:"confidence"`
	Source         string      `json:"source"`
	MatchType      string      `json:"match_type"`
	Category       string      `json:"category"`
	MatchedKeyword string      `json:"matched_keyword,omitempty"`
	Adjustments    Adjustments `json:"adjustments"`
}

// Tier buckets a CPM value into scorer points (spec §4.4 tier table).
func Tier(cpmValue float64) int {
	switch {
	case cpmValue >= 10:
		return 15
	case cpmValue >= 6:
		return 12
	case cpmValue >= 4:
		return 9
	case cpmValue >= 2:
		return 6
	default:
		return 3
	}
}
