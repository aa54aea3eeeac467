package cpm

import (
	"regexp"
	"strings"
	"time"
)

const fuzzyThreshold = 80

var wordRe = regexp.MustCompile(`\w+`)

// Options controls the optional adjustment passes (spec §4.4). A disabled
// pass contributes a 1.0 multiplier; the zero Options disables both, and
// DefaultOptions enables both.
type Options struct {
	Country         string // ISO country code, default "US"
	ApplySeasonal   bool
	ApplyGeographic bool
	now             func() time.Time // test seam, defaults to time.Now
}

// DefaultOptions returns the spec's defaults: US viewer, both
// adjustments applied.
func DefaultOptions() Options {
	return Options{Country: "US", ApplySeasonal: true, ApplyGeographic: true}
}

// EstimateCPM maps niche to a CPM estimate via the six-level match
// cascade (spec §4.4), then applies geographic/seasonal adjustment.
func EstimateCPM(niche string, categoryHint string, opts Options) Estimate {
	nicheLower := strings.ToLower(strings.TrimSpace(niche))
	nicheWords := wordSet(nicheLower)

	result := exactMatch(nicheWords, nicheLower)
	if result == nil {
		result = fuzzyMatch(nicheLower)
	}
	if result == nil {
		result = substringMatch(nicheLower)
	}
	if result == nil && categoryHint != "" {
		result = categoryFallback(categoryHint)
	}
	if result == nil {
		result = inferCategory(nicheLower)
	}
	if result == nil {
		result = &matchResult{
			cpm: defaultCPM, rangeLo: 2.0, rangeHi: 5.0,
			confidence: 0.30, source: "Global YouTube average",
			matchType: "default", category: "unknown",
		}
	}

	return applyAdjustments(*result, opts)
}

// matchResult is the intermediate, pre-adjustment shape each cascade
// level produces.
type matchResult struct {
	cpm            float64
	rangeLo, rangeHi float64
	confidence     float64
	source         string
	matchType      string
	category       string
	matchedKeyword string
}

func wordSet(s string) map[string]bool {
	words := wordRe.FindAllString(s, -1)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// exactMatch implements spec level 1: longest phrase substring, or
// longest word-set subset, wins.
func exactMatch(nicheWords map[string]bool, nicheLower string) *matchResult {
	var best *matchResult
	bestScore := 0

	for _, cat := range categoryOrder {
		data := database[cat]
		for _, kw := range data.keywords {
			kwLower := strings.ToLower(kw)

			if strings.Contains(nicheLower, kwLower) {
				score := len(kwLower)
				if score > bestScore {
					bestScore = score
					best = &matchResult{
						cpm: data.avgCPM, rangeLo: data.rangeLo, rangeHi: data.rangeHi,
						confidence: 0.95, source: data.source,
						matchType: "exact", category: cat, matchedKeyword: kw,
					}
				}
				continue
			}

			kwWords := strings.Fields(kwLower)
			if subsetOf(kwWords, nicheWords) {
				score := len(kwWords)
				if score > bestScore {
					bestScore = score
					best = &matchResult{
						cpm: data.avgCPM, rangeLo: data.rangeLo, rangeHi: data.rangeHi,
						confidence: 0.90, source: data.source,
						matchType: "exact_words", category: cat, matchedKeyword: kw,
					}
				}
			}
		}
	}
	return best
}

func subsetOf(words []string, set map[string]bool) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !set[w] {
			return false
		}
	}
	return true
}

// fuzzyMatch implements spec level 2: best token-set-ratio across every
// keyword, accepted at >= 80.
func fuzzyMatch(nicheLower string) *matchResult {
	refs := allKeywords()
	bestScore := -1
	var bestRef keywordRef
	for _, ref := range refs {
		score := tokenSetRatio(nicheLower, strings.ToLower(ref.keyword))
		if score > bestScore {
			bestScore = score
			bestRef = ref
		}
	}
	if bestScore < fuzzyThreshold {
		return nil
	}
	data := database[bestRef.category]
	return &matchResult{
		cpm: data.avgCPM, rangeLo: data.rangeLo, rangeHi: data.rangeHi,
		confidence: float64(bestScore) / 100.0 * 0.85,
		source:     data.source,
		matchType:  "fuzzy",
		category:   bestRef.category,
		matchedKeyword: bestRef.keyword,
	}
}

// substringMatch implements spec level 3.
func substringMatch(nicheLower string) *matchResult {
	refs := allKeywords()
	var best *keywordRef
	bestLen := 0

	for i := range refs {
		ref := refs[i]
		kwLower := strings.ToLower(ref.keyword)

		if strings.Contains(kwLower, nicheLower) || strings.Contains(nicheLower, kwLower) {
			if len(kwLower) > bestLen {
				bestLen = len(kwLower)
				best = &ref
			}
			continue
		}
		for _, w := range strings.Fields(kwLower) {
			if len(w) > 3 && strings.Contains(nicheLower, w) && len(w) > bestLen {
				bestLen = len(w)
				best = &ref
			}
		}
	}
	if best == nil {
		return nil
	}
	data := database[best.category]
	return &matchResult{
		cpm: data.avgCPM, rangeLo: data.rangeLo, rangeHi: data.rangeHi,
		confidence: 0.70, source: data.source,
		matchType: "substring", category: best.category, matchedKeyword: best.keyword,
	}
}

// categoryFallback implements spec level 4: parent-category fallback by
// substring either direction.
func categoryFallback(category string) *matchResult {
	catLower := strings.ToLower(category)
	for _, parent := range categoryFallbackOrder {
		if strings.Contains(parent, catLower) || strings.Contains(catLower, parent) {
			cpm := categoryFallbacks[parent]
			return &matchResult{
				cpm: cpm, rangeLo: cpm * 0.7, rangeHi: cpm * 1.3,
				confidence: 0.60, source: "Category fallback (" + parent + ")",
				matchType: "category", category: parent,
			}
		}
	}
	return nil
}

var categoryFallbackOrder = []string{
	"finance", "technology", "business", "health", "education",
	"entertainment", "lifestyle", "creative", "kids", "gaming",
}

// inferCategory implements spec level 5: first hinted word wins.
func inferCategory(nicheLower string) *matchResult {
	for _, word := range strings.Fields(nicheLower) {
		for _, h := range categoryHints {
			if strings.Contains(word, h.hint) {
				return categoryFallback(h.category)
			}
		}
	}
	return nil
}

func applyAdjustments(r matchResult, opts Options) Estimate {
	geo := 1.0
	if opts.ApplyGeographic {
		country := strings.ToUpper(opts.Country)
		if country == "" {
			country = "US"
		}
		if m, ok := geoMultipliers[country]; ok {
			geo = m
		} else {
			geo = 0.5
		}
	}

	now := time.Now
	if opts.now != nil {
		now = opts.now
	}
	month := now().Month()

	seasonal := 1.0
	if opts.ApplySeasonal {
		if m, ok := seasonalMultipliers[int(month)]; ok {
			seasonal = m
		}
	}

	adjustedCPM := round2(r.cpm * geo * seasonal)
	adjustedLo := round2(r.rangeLo * geo * seasonal)
	adjustedHi := round2(r.rangeHi * geo * seasonal)

	country := strings.ToUpper(opts.Country)
	if country == "" {
		country = "US"
	}

	return Estimate{
		BaseCPM:        r.cpm,
		CPM:            adjustedCPM,
		CPMRange:       Range{Lo: adjustedLo, Hi: adjustedHi},
		Confidence:     r.confidence,
		Source:         r.source,
		MatchType:      r.matchType,
		Category:       r.category,
		MatchedKeyword: r.matchedKeyword,
		Adjustments: Adjustments{
			GeographicMultiplier: geo,
			SeasonalMultiplier:   seasonal,
			Country:              country,
			Month:                int(month),
		},
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
