package scorer

import (
	"context"
	"math/rand"
	"strings"

	"ytniche/domain/cpm"
	"ytniche/platform/scraper"
	"ytniche/platform/trends"
)

// Service wires C6's two entry points to their C2/C3/C4 collaborators
// (spec §4.6). The factor math stays in factors.go/Compute; this file is
// the only place in the package that performs I/O.
type Service struct {
	Scraper    scraper.Gateway
	Trends     *trends.Client
	CPMOptions cpm.Options
	Rand       *rand.Rand
}

// NewService constructs a Service with a seeded random source for the
// quick-score content sub-score jitter (spec §9: random sources must be
// injectable for reproducible tests).
func NewService(g scraper.Gateway, t *trends.Client, seed int64) *Service {
	return &Service{
		Scraper:    g,
		Trends:     t,
		CPMOptions: cpm.DefaultOptions(),
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

// QuickScore cheaply ranks a niche without calling the trends provider
// (spec §4.6): it reuses whatever scraper cache entry already exists,
// estimates trend from a keyword table, and injects a random content
// sub-score in [8, 13] in place of the expensive content-availability
// factor.
func (s *Service) QuickScore(ctx context.Context, niche string) (float64, error) {
	res, err := s.Scraper.Search(ctx, niche, 30, scraper.SearchVideos)
	if err != nil {
		return 0, err
	}
	items := res.AllItems()

	volume := ClampVolume(res.PageInfo.TotalResults)
	trend := estimateTrendFromKeywords(niche)
	cpmEst := cpm.EstimateCPM(niche, "", s.CPMOptions)
	channelCount := uniqueChannelCount(items)
	growth := DeriveGrowth(topViewCounts(items, 10))

	sv := searchVolumeFactor(volume, trend)
	comp := competitionFactor(channelCount, growth)
	mon := monetizationFactor(cpmEst.CPM)
	trendFactor := trendMomentumFactor(trend)

	contentSub := float64(8 + s.Rand.Intn(6)) // [8, 13]

	return sv.Score + comp.Score + mon.Score + trendFactor.Score + contentSub, nil
}

// FullScore runs the complete five-factor breakdown (spec §4.6): a video
// search for volume/competition/trend inputs, a trends lookup, a CPM
// estimate, and a second search (channel-typed) to measure the
// channel-diversity sub-signal of content availability.
func (s *Service) FullScore(ctx context.Context, niche string) (NicheScore, error) {
	videoRes, err := s.Scraper.Search(ctx, niche, 30, scraper.SearchVideos)
	if err != nil {
		return NicheScore{}, err
	}
	items := videoRes.AllItems()

	trend := s.Trends.Score(ctx, niche)
	cpmEst := cpm.EstimateCPM(niche, "", s.CPMOptions)

	channelsInSample := uniqueChannelCount(items)
	if channelRes, err := s.Scraper.Search(ctx, niche, 50, scraper.SearchChannels); err == nil {
		if n := uniqueChannelCount(channelRes.AllItems()); n > 0 {
			channelsInSample = n
		}
	}

	in := Inputs{
		Volume:           ClampVolume(videoRes.PageInfo.TotalResults),
		Trend:            trend,
		CPM:              cpmEst.CPM,
		ChannelCount:     uniqueChannelCount(items),
		Growth:           DeriveGrowth(topViewCounts(items, 10)),
		TotalResults:     videoRes.PageInfo.TotalResults,
		Videos:           len(videoRes.Items[scraper.KindVideo]),
		ChannelsInSample: channelsInSample,
	}
	return Compute(in), nil
}

func uniqueChannelCount(items []scraper.SearchItem) int {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ChannelID != "" {
			seen[it.ChannelID] = true
		}
	}
	return len(seen)
}

func topViewCounts(items []scraper.SearchItem, n int) []int64 {
	out := make([]int64, 0, n)
	for _, it := range items {
		if it.ViewCount == nil {
			continue
		}
		out = append(out, *it.ViewCount)
		if len(out) == n {
			break
		}
	}
	return out
}

// estimateTrendFromKeywords is a local, network-free trend heuristic for
// quick scoring (spec §4.6: "a keyword-based trend estimate (does not
// call C3)"). It's intentionally simpler than the trends client's
// fallback table: no jitter, since quick_score's own randomness budget is
// spent on the content sub-score.
func estimateTrendFromKeywords(niche string) int {
	lower := strings.ToLower(niche)
	for _, e := range quickTrendSeeds {
		if strings.Contains(lower, e.substr) {
			return e.seed
		}
	}
	return 50
}

var quickTrendSeeds = []struct {
	substr string
	seed   int
}{
	{"ai", 75}, {"crypto", 70}, {"tutorial", 60}, {"fitness", 50}, {"finance", 55}, {"gaming", 55},
}
