package recommend

import (
	"sort"
	"strings"
)

// synonymTable maps a term to its alternatives (spec §4.7). Substitution
// is tried in both directions: if niche contains the key, the value
// forms are substituted in; this list only needs the canonical direction
// since GenerateVariants walks both key and value sides.
var synonymTable = map[string][]string{
	"tutorial":  {"guide", "how to", "lesson", "course"},
	"ai":        {"artificial intelligence", "machine learning", "chatgpt"},
	"review":    {"reviews", "breakdown", "analysis"},
	"tips":      {"tricks", "hacks", "advice"},
	"beginner":  {"beginners", "newbie", "starter"},
	"workout":   {"exercise", "training", "fitness routine"},
	"recipe":    {"recipes", "cooking", "meal idea"},
	"investing": {"investment", "stock trading", "portfolio building"},
}

// decorations are fixed suffixes/prefixes combined with a cleaned base
// (spec §4.7).
var decorations = []string{
	"reviews", "tutorial", "guide", "tips", "for beginners", "analysis", "explained", "2024", "how to",
}

// fillerTokens are stripped to produce the "cleaned base" decorations
// attach to.
var fillerTokens = map[string]bool{
	"the": true, "a": true, "an": true, "for": true, "of": true, "to": true, "best": true,
}

const maxVariants = 12

// GenerateVariants produces up to maxVariants deterministic transforms
// of niche (spec §4.7 step 1), deduplicated.
func GenerateVariants(niche string) []string {
	seen := map[string]bool{strings.ToLower(strings.TrimSpace(niche)): true}
	var out []string

	add := func(v string) {
		v = strings.TrimSpace(v)
		if len(v) < 4 {
			return
		}
		lower := strings.ToLower(v)
		if seen[lower] {
			return
		}
		seen[lower] = true
		out = append(out, v)
	}

	lowerNiche := strings.ToLower(niche)
	terms := make([]string, 0, len(synonymTable))
	for term := range synonymTable {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	for _, term := range terms {
		alts := synonymTable[term]
		if strings.Contains(lowerNiche, term) {
			for _, alt := range alts {
				add(strings.Replace(lowerNiche, term, alt, 1))
			}
			continue
		}
		for _, alt := range alts {
			if strings.Contains(lowerNiche, alt) {
				add(strings.Replace(lowerNiche, alt, term, 1))
			}
		}
	}

	base := cleanedBase(niche)
	for _, d := range decorations {
		add(base + " " + d)
		add(d + " " + base)
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

// cleanedBase strips filler tokens from niche, matching the source's
// "cleaned base" used as the decoration anchor.
func cleanedBase(niche string) string {
	words := strings.Fields(strings.ToLower(niche))
	var kept []string
	for _, w := range words {
		if !fillerTokens[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
