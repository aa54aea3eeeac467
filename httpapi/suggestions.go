package httpapi

import "math/rand"

// CategorySuggestion is one entry of /api/suggestions (spec §6: "Four
// randomly chosen categories, three niches each, from a static seed
// list").
type CategorySuggestion struct {
	Category string   `json:"category"`
	Niches   []string `json:"niches"`
}

var suggestionSeedList = []CategorySuggestion{
	{Category: "AI & Technology", Niches: []string{"ai tools for creators", "chatgpt prompts for business", "no-code app builders"}},
	{Category: "Personal Finance", Niches: []string{"budgeting for beginners", "side hustle ideas", "investing for millennials"}},
	{Category: "Fitness & Health", Niches: []string{"home workout routines", "mobility for desk workers", "beginner yoga flows"}},
	{Category: "Gaming", Niches: []string{"retro game reviews", "indie game let's plays", "speedrunning tutorials"}},
	{Category: "Cooking", Niches: []string{"5-ingredient recipes", "meal prep for one", "regional street food"}},
	{Category: "Travel", Niches: []string{"budget backpacking routes", "digital nomad cities", "hidden travel gems"}},
	{Category: "Productivity", Niches: []string{"note-taking systems", "deep work routines", "habit tracking apps"}},
	{Category: "DIY & Home", Niches: []string{"small apartment hacks", "beginner woodworking", "garden design on a budget"}},
	{Category: "Education", Niches: []string{"language learning hacks", "exam study techniques", "explainer videos for kids"}},
	{Category: "Entertainment", Niches: []string{"movie breakdown channels", "true crime recaps", "anime analysis"}},
}

// pickSuggestions returns n random categories (without replacement) from
// the seed list using rng for selection.
func pickSuggestions(rng *rand.Rand, n int) []CategorySuggestion {
	if n > len(suggestionSeedList) {
		n = len(suggestionSeedList)
	}
	idx := rng.Perm(len(suggestionSeedList))[:n]
	out := make([]CategorySuggestion, 0, n)
	for _, i := range idx {
		out = append(out, suggestionSeedList[i])
	}
	return out
}
