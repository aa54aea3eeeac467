package recommend

import "testing"

func TestGenerateVariantsDeduplicatesAndCaps(t *testing.T) {
	variants := GenerateVariants("ai tutorial for beginners")
	if len(variants) == 0 {
		t.Fatalf("expected at least one variant")
	}
	if len(variants) > maxVariants {
		t.Fatalf("expected at most %d variants, got %d", maxVariants, len(variants))
	}
	seen := map[string]bool{}
	for _, v := range variants {
		lower := v
		if seen[lower] {
			t.Fatalf("duplicate variant: %s", v)
		}
		seen[lower] = true
	}
}

func TestGenerateVariantsAppliesSynonyms(t *testing.T) {
	variants := GenerateVariants("ai tutorial")
	found := false
	for _, v := range variants {
		if v == "ai guide" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected synonym variant %q, got %v", "ai guide", variants)
	}
}

func TestCleanedBaseStripsFillers(t *testing.T) {
	got := cleanedBase("the best guide to investing")
	if got == "the best guide to investing" {
		t.Fatalf("expected filler words stripped, got %q", got)
	}
}

func TestGenerateVariantsDropsShortStrings(t *testing.T) {
	variants := GenerateVariants("ai")
	for _, v := range variants {
		if len(v) < 4 {
			t.Fatalf("expected no variant shorter than 4 chars, got %q", v)
		}
	}
}
