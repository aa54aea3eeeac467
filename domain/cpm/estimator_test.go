package cpm

import (
	"testing"
	"time"
)

func fixedOptions(month int) Options {
	opts := DefaultOptions()
	opts.now = func() time.Time { return time.Date(2026, time.Month(month), 15, 0, 0, 0, 0, time.UTC) }
	return opts
}

func TestExactPhraseMatch(t *testing.T) {
	e := EstimateCPM("personal finance tips for beginners", "", fixedOptions(6))
	if e.MatchType != "exact" {
		t.Fatalf("expected exact match, got %s", e.MatchType)
	}
	if e.Category != "personal_finance" {
		t.Fatalf("expected personal_finance category, got %s", e.Category)
	}
	if e.Confidence != 0.95 {
		t.Fatalf("expected confidence 0.95, got %f", e.Confidence)
	}
}

func TestSubstringMatchFallsThroughFromExact(t *testing.T) {
	e := EstimateCPM("manga recap channel", "", fixedOptions(6))
	if e.MatchType == "default" {
		t.Fatalf("expected a real match for 'manga recap channel', got default")
	}
}

func TestCategoryHintFallback(t *testing.T) {
	e := EstimateCPM("xyzunrelatedgarbledtext", "finance", fixedOptions(6))
	if e.MatchType != "category" {
		t.Fatalf("expected category fallback match, got %s", e.MatchType)
	}
	if e.Confidence != 0.60 {
		t.Fatalf("expected confidence 0.60, got %f", e.Confidence)
	}
}

func TestInferredCategoryFromCommonWord(t *testing.T) {
	e := EstimateCPM("wealth hacks", "", fixedOptions(6))
	if e.MatchType != "category" || e.Category != "finance" {
		t.Fatalf("expected inferred finance category, got %s/%s", e.MatchType, e.Category)
	}
}

func TestDefaultFallbackWhenNothingMatches(t *testing.T) {
	e := EstimateCPM("qzxjklmwpbv totally made up phrase", "", fixedOptions(6))
	if e.MatchType != "default" {
		t.Fatalf("expected default match, got %s", e.MatchType)
	}
	if e.Confidence != 0.30 {
		t.Fatalf("expected confidence 0.30, got %f", e.Confidence)
	}
}

func TestGeographicMultiplierAppliesForUnlistedCountry(t *testing.T) {
	opts := fixedOptions(6)
	opts.Country = "ZZ"
	e := EstimateCPM("personal finance", "", opts)
	if e.Adjustments.GeographicMultiplier != 0.5 {
		t.Fatalf("expected default 0.5 multiplier for unlisted country, got %f", e.Adjustments.GeographicMultiplier)
	}
}

func TestSeasonalMultiplierPeaksInDecember(t *testing.T) {
	dec := EstimateCPM("personal finance", "", fixedOptions(12))
	jan := EstimateCPM("personal finance", "", fixedOptions(1))
	if dec.Adjustments.SeasonalMultiplier <= jan.Adjustments.SeasonalMultiplier {
		t.Fatalf("expected december multiplier > january, got dec=%f jan=%f",
			dec.Adjustments.SeasonalMultiplier, jan.Adjustments.SeasonalMultiplier)
	}
}

func TestCPMIsBaseTimesMultipliers(t *testing.T) {
	opts := fixedOptions(6)
	opts.Country = "US"
	e := EstimateCPM("personal finance", "", opts)
	want := round2(e.BaseCPM * e.Adjustments.GeographicMultiplier * e.Adjustments.SeasonalMultiplier)
	if e.CPM != want {
		t.Fatalf("expected cpm %f, got %f", want, e.CPM)
	}
}

func TestTierBuckets(t *testing.T) {
	cases := []struct {
		cpm  float64
		want int
	}{
		{15, 15}, {10, 15}, {9.99, 12}, {6, 12}, {4, 9}, {3.99, 6}, {2, 6}, {1.99, 3}, {0, 3},
	}
	for _, c := range cases {
		if got := Tier(c.cpm); got != c.want {
			t.Fatalf("Tier(%f) = %d, want %d", c.cpm, got, c.want)
		}
	}
}
