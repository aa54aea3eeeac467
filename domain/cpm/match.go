package cpm

import "strings"

// tokenSetRatio is a hand-rolled approximation of rapidfuzz's
// token_set_ratio (no Go library in the pack implements fuzzy string
// similarity, so this is intentionally dependency-free — see DESIGN.md).
// It tokenizes both strings, computes the intersection and the two
// symmetric differences, and returns the best character-level ratio (see
// ratio) among the sorted intersection against each side's sorted tokens
// and the two sorted sides against each other.
func tokenSetRatio(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter := intersect(ta, tb)
	onlyA := subtract(ta, inter)
	onlyB := subtract(tb, inter)

	sortedInter := strings.Join(sortedSlice(inter), " ")
	sortedA := strings.Join(sortedSlice(append(append([]string{}, inter...), onlyA...)), " ")
	sortedB := strings.Join(sortedSlice(append(append([]string{}, inter...), onlyB...)), " ")

	best := ratio(sortedInter, sortedA)
	if r := ratio(sortedInter, sortedB); r > best {
		best = r
	}
	if r := ratio(sortedA, sortedB); r > best {
		best = r
	}
	return best
}

func tokenSet(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []string
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func subtract(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []string
	for _, v := range a {
		if !set[v] {
			out = append(out, v)
		}
	}
	return out
}

func sortedSlice(s []string) []string {
	out := append([]string{}, s...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// ratio scores character-level similarity between two strings as a
// percentage, using Levenshtein edit distance normalized by combined
// length (the same normalization rapidfuzz's ratio() uses under the
// hood).
func ratio(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	dist := levenshtein(a, b)
	maxLen := len(a) + len(b)
	if maxLen == 0 {
		return 100
	}
	similarity := float64(maxLen-dist) / float64(maxLen)
	return int(similarity * 100)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
