package scorer

// MinVolume and MaxVolume bound the search-volume estimate derived from
// a search's pageInfo.totalResults (spec §4.6).
const (
	MinVolume = 10_000.0
	MaxVolume = 1_500_000.0
)

// ClampVolume derives a bounded volume estimate from a raw totalResults
// figure (spec §4.6: "volume is a bounded estimate derived from
// pageInfo.totalResults × 50, clamped to [10000, 1500000]").
func ClampVolume(totalResults int64) float64 {
	v := float64(totalResults) * 50
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}

// searchVolumeFactor: min(volume/100000 × 5, 15) + trend/100 × 10, max 25.
func searchVolumeFactor(volume float64, trend int) Factor {
	sub := volume / 100_000 * 5
	if sub > 15 {
		sub = 15
	}
	score := sub + float64(trend)/100*10
	return Factor{Score: score, Max: 25, Provenance: "volume and trend popularity"}
}

// competitionBase returns the base points for a channel count bucket
// (spec §4.6: "base ∈ {20, 16, 12, 8} for channel_count < {200, 500,
// 1000, ∞}").
func competitionBase(channelCount int) float64 {
	switch {
	case channelCount < 200:
		return 20
	case channelCount < 500:
		return 16
	case channelCount < 1000:
		return 12
	default:
		return 8
	}
}

// DeriveGrowth computes the view-velocity proxy from a sample of top
// video view counts (spec §4.6, flagged as an unjustified heuristic in
// spec §9 — preserved for behavioural parity, not re-derived). Returns
// nil when no views were observed.
func DeriveGrowth(topViews []int64) *float64 {
	if len(topViews) == 0 {
		return nil
	}
	var sum int64
	for _, v := range topViews {
		sum += v
	}
	avg := float64(sum) / float64(len(topViews))
	g := avg / 1_000_000
	if g < 0.02 {
		g = 0.02
	}
	if g > 0.25 {
		g = 0.25
	}
	return &g
}

// competitionFactor: base + growth × 30, max 25. A nil growth (no views
// observed) contributes zero.
func competitionFactor(channelCount int, growth *float64) Factor {
	base := competitionBase(channelCount)
	g := 0.0
	if growth != nil {
		g = *growth
	}
	score := base + g*30
	if score > 25 {
		score = 25
	}
	return Factor{Score: score, Max: 25, Provenance: "channel count and view velocity"}
}

// monetizationFactor: min(cpm/12 × 20, 20).
func monetizationFactor(cpmValue float64) Factor {
	score := cpmValue / 12 * 20
	if score > 20 {
		score = 20
	}
	return Factor{Score: score, Max: 20, Provenance: "CPM estimate"}
}

// videoAbundancePoints buckets a video sample count into 2-6 points over
// thresholds {10, 20, 30, 40} (spec §4.6).
func videoAbundancePoints(videos int) float64 {
	switch {
	case videos >= 40:
		return 6
	case videos >= 30:
		return 5
	case videos >= 20:
		return 4
	case videos >= 10:
		return 3
	default:
		return 2
	}
}

// channelDiversityPoints buckets a sampled channel count into 1-4 points
// over thresholds {5, 10, 15} (spec §4.6).
func channelDiversityPoints(channelsInSample int) float64 {
	switch {
	case channelsInSample >= 15:
		return 4
	case channelsInSample >= 10:
		return 3
	case channelsInSample >= 5:
		return 2
	default:
		return 1
	}
}

// saturationPoints scores totalResults on a bell curve that peaks at a
// "sweet spot" market size — large enough to sustain a channel, small
// enough not to be saturated — bottoming out at both extremes (spec §4.6,
// §9 open question: thresholds partly measure API page size rather than
// true market size; retained for behavioural parity).
func saturationPoints(totalResults int64) float64 {
	switch {
	case totalResults <= 1_000:
		return 2
	case totalResults <= 10_000:
		return 4
	case totalResults <= 100_000:
		return 5
	case totalResults <= 1_000_000:
		return 4
	default:
		return 2
	}
}

// contentAvailabilityFactor sums the three bucketed sub-scores, max 15.
func contentAvailabilityFactor(videos, channelsInSample int, totalResults int64) Factor {
	score := videoAbundancePoints(videos) + channelDiversityPoints(channelsInSample) + saturationPoints(totalResults)
	return Factor{Score: score, Max: 15, Provenance: "video abundance, channel diversity, saturation"}
}

// trendMomentumFactor: trend/100 × 15.
func trendMomentumFactor(trend int) Factor {
	return Factor{Score: float64(trend) / 100 * 15, Max: 15, Provenance: "trend popularity"}
}

// Compute runs all five factors and totals them (spec §4.6).
func Compute(in Inputs) NicheScore {
	sv := searchVolumeFactor(in.Volume, in.Trend)
	comp := competitionFactor(in.ChannelCount, in.Growth)
	mon := monetizationFactor(in.CPM)
	avail := contentAvailabilityFactor(in.Videos, in.ChannelsInSample, in.TotalResults)
	trend := trendMomentumFactor(in.Trend)

	total := sv.Score + comp.Score + mon.Score + avail.Score + trend.Score

	return NicheScore{
		SearchVolume:        sv,
		Competition:         comp,
		Monetization:        mon,
		ContentAvailability: avail,
		TrendMomentum:       trend,
		Total:               total,
		Grade:               Grade(total),
	}
}
