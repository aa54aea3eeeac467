package cpm

// categoryData is one entry of the static CPM database, which holds 50
// categories. Sources cite the same aggregators the original database's
// header credits: Lenostube, Outlierkit, FirstGrowthAgency, SMBillion,
// and r/PartneredYoutube community reports.
type categoryData struct {
	keywords []string
	avgCPM   float64
	rangeLo  float64
	rangeHi  float64
	source   string
}

const defaultSource = "Lenostube/Outlierkit 2025 aggregate"

// database maps a category name to its CPM profile. Categories are
// grouped by vertical; within a vertical, more specific categories are
// listed before their broader parent so exact-match scoring (which
// prefers the longest matched keyword) naturally favors specificity.
var database = map[string]categoryData{
	"personal_finance": {
		keywords: []string{"personal finance", "budgeting", "debt payoff", "frugal living", "money management"},
		avgCPM:   13.50, rangeLo: 9, rangeHi: 18, source: "FirstGrowthAgency 2025",
	},
	"investing": {
		keywords: []string{"investing", "stock market", "day trading", "options trading", "dividend investing"},
		avgCPM:   16.00, rangeLo: 10, rangeHi: 22, source: "FirstGrowthAgency 2025",
	},
	"cryptocurrency": {
		keywords: []string{"cryptocurrency", "crypto", "bitcoin", "blockchain", "nft"},
		avgCPM:   11.00, rangeLo: 6, rangeHi: 16, source: "SMBillion 2025",
	},
	"real_estate": {
		keywords: []string{"real estate investing", "real estate", "house flipping", "rental property"},
		avgCPM:   14.00, rangeLo: 9, rangeHi: 20, source: "FirstGrowthAgency 2025",
	},
	"insurance": {
		keywords: []string{"insurance", "life insurance", "health insurance"},
		avgCPM:   18.00, rangeLo: 12, rangeHi: 25, source: "FirstGrowthAgency 2025",
	},
	"software_development": {
		keywords: []string{"software development", "web development", "coding tutorial", "programming", "javascript", "python programming"},
		avgCPM:   9.50, rangeLo: 6, rangeHi: 13, source: "Outlierkit 2025",
	},
	"saas_business": {
		keywords: []string{"saas", "software as a service", "b2b sales"},
		avgCPM:   12.00, rangeLo: 8, rangeHi: 17, source: "Outlierkit 2025",
	},
	"cybersecurity": {
		keywords: []string{"cybersecurity", "ethical hacking", "penetration testing"},
		avgCPM:   10.50, rangeLo: 7, rangeHi: 14, source: "Outlierkit 2025",
	},
	"ai_tools": {
		keywords: []string{"artificial intelligence", "ai tools", "machine learning", "chatgpt", "prompt engineering"},
		avgCPM:   8.50, rangeLo: 5, rangeHi: 12, source: "Outlierkit 2025",
	},
	"technology_reviews": {
		keywords: []string{"tech review", "gadget review", "smartphone review", "tech news"},
		avgCPM:   6.00, rangeLo: 4, rangeHi: 9, source: "Outlierkit 2025",
	},
	"digital_marketing": {
		keywords: []string{"digital marketing", "seo", "affiliate marketing", "email marketing"},
		avgCPM:   11.50, rangeLo: 7, rangeHi: 16, source: "SMBillion 2025",
	},
	"entrepreneurship": {
		keywords: []string{"entrepreneurship", "starting a business", "small business", "side hustle"},
		avgCPM:   10.00, rangeLo: 6, rangeHi: 15, source: "SMBillion 2025",
	},
	"career_advice": {
		keywords: []string{"career advice", "resume tips", "job interview", "linkedin"},
		avgCPM:   8.00, rangeLo: 5, rangeHi: 11, source: "FirstGrowthAgency 2025",
	},
	"productivity": {
		keywords: []string{"productivity", "time management", "study tips", "note taking"},
		avgCPM:   6.50, rangeLo: 4, rangeHi: 9, source: "r/PartneredYoutube 2025",
	},
	"fitness": {
		keywords: []string{"fitness", "workout routine", "home workout", "bodybuilding", "calisthenics"},
		avgCPM:   5.50, rangeLo: 3, rangeHi: 8, source: "Lenostube 2025",
	},
	"weight_loss": {
		keywords: []string{"weight loss", "fat loss journey", "diet plan"},
		avgCPM:   7.00, rangeLo: 4, rangeHi: 10, source: "FirstGrowthAgency 2025",
	},
	"nutrition": {
		keywords: []string{"nutrition", "meal prep", "healthy eating", "macros"},
		avgCPM:   5.00, rangeLo: 3, rangeHi: 7, source: "Lenostube 2025",
	},
	"mental_health": {
		keywords: []string{"mental health", "anxiety relief", "meditation", "mindfulness"},
		avgCPM:   6.50, rangeLo: 4, rangeHi: 9, source: "SMBillion 2025",
	},
	"cooking": {
		keywords: []string{"cooking recipes", "cooking", "recipe", "baking", "meal ideas"},
		avgCPM:   4.00, rangeLo: 2, rangeHi: 6, source: "Lenostube 2025",
	},
	"travel_vlog": {
		keywords: []string{"travel vlog", "travel guide", "budget travel", "backpacking"},
		avgCPM:   5.00, rangeLo: 3, rangeHi: 7, source: "Lenostube 2025",
	},
	"beauty_makeup": {
		keywords: []string{"makeup tutorial", "beauty routine", "skincare routine"},
		avgCPM:   4.50, rangeLo: 2.5, rangeHi: 7, source: "SMBillion 2025",
	},
	"fashion": {
		keywords: []string{"fashion haul", "outfit ideas", "style tips"},
		avgCPM:   4.00, rangeLo: 2, rangeHi: 6, source: "SMBillion 2025",
	},
	"parenting": {
		keywords: []string{"parenting tips", "new parent", "baby care"},
		avgCPM:   6.00, rangeLo: 3.5, rangeHi: 9, source: "FirstGrowthAgency 2025",
	},
	"home_improvement": {
		keywords: []string{"home improvement", "diy home repair", "woodworking", "home renovation"},
		avgCPM:   7.50, rangeLo: 5, rangeHi: 11, source: "Lenostube 2025",
	},
	"automotive": {
		keywords: []string{"car review", "car repair", "automotive", "truck mods"},
		avgCPM:   6.00, rangeLo: 4, rangeHi: 9, source: "Outlierkit 2025",
	},
	"gaming_lets_play": {
		keywords: []string{"lets play", "gameplay walkthrough", "gaming highlights"},
		avgCPM:   2.50, rangeLo: 1.5, rangeHi: 4, source: "r/PartneredYoutube 2025",
	},
	"gaming_esports": {
		keywords: []string{"esports", "competitive gaming", "gaming tournament"},
		avgCPM:   3.50, rangeLo: 2, rangeHi: 5, source: "r/PartneredYoutube 2025",
	},
	"mobile_gaming": {
		keywords: []string{"mobile gaming", "mobile game review"},
		avgCPM:   2.00, rangeLo: 1, rangeHi: 3, source: "r/PartneredYoutube 2025",
	},
	"anime_manga": {
		keywords: []string{"anime recap", "manga recap", "anime review", "anime explained"},
		avgCPM:   2.00, rangeLo: 1, rangeHi: 3.5, source: "Lenostube 2025",
	},
	"movie_tv_commentary": {
		keywords: []string{"movie review", "tv show recap", "movie explained", "ending explained"},
		avgCPM:   3.00, rangeLo: 1.5, rangeHi: 4.5, source: "Lenostube 2025",
	},
	"celebrity_gossip": {
		keywords: []string{"celebrity news", "celebrity gossip", "drama commentary"},
		avgCPM:   2.50, rangeLo: 1, rangeHi: 4, source: "SMBillion 2025",
	},
	"comedy_sketch": {
		keywords: []string{"comedy sketch", "funny moments", "prank video"},
		avgCPM:   2.00, rangeLo: 1, rangeHi: 3.5, source: "Lenostube 2025",
	},
	"reaction_content": {
		keywords: []string{"reaction video", "reacting to"},
		avgCPM:   1.80, rangeLo: 1, rangeHi: 3, source: "r/PartneredYoutube 2025",
	},
	"music_cover": {
		keywords: []string{"music cover", "song cover", "piano cover", "guitar cover"},
		avgCPM:   1.50, rangeLo: 0.8, rangeHi: 2.5, source: "Lenostube 2025",
	},
	"music_production": {
		keywords: []string{"music production", "beat making", "mixing mastering"},
		avgCPM:   3.50, rangeLo: 2, rangeHi: 5, source: "Outlierkit 2025",
	},
	"art_drawing": {
		keywords: []string{"drawing tutorial", "digital art", "sketchbook", "painting tutorial"},
		avgCPM:   2.50, rangeLo: 1.2, rangeHi: 4, source: "Lenostube 2025",
	},
	"kids_education": {
		keywords: []string{"kids learning", "nursery rhymes", "educational cartoon"},
		avgCPM:   3.00, rangeLo: 1.5, rangeHi: 4.5, source: "SMBillion 2025",
	},
	"language_learning": {
		keywords: []string{"language learning", "learn spanish", "learn english", "learn japanese"},
		avgCPM:   7.00, rangeLo: 4, rangeHi: 10, source: "FirstGrowthAgency 2025",
	},
	"test_prep": {
		keywords: []string{"exam prep", "sat prep", "test taking strategies"},
		avgCPM:   8.00, rangeLo: 5, rangeHi: 11, source: "FirstGrowthAgency 2025",
	},
	"legal_advice": {
		keywords: []string{"legal advice", "law explained", "lawyer reacts"},
		avgCPM:   12.00, rangeLo: 8, rangeHi: 17, source: "FirstGrowthAgency 2025",
	},
	"b2b_saas_review": {
		keywords: []string{"software review", "app review", "saas review"},
		avgCPM:   9.00, rangeLo: 6, rangeHi: 13, source: "Outlierkit 2025",
	},
	"science_education": {
		keywords: []string{"science explained", "physics explained", "space exploration"},
		avgCPM:   5.00, rangeLo: 3, rangeHi: 7, source: "Lenostube 2025",
	},
	"history_documentary": {
		keywords: []string{"history documentary", "history explained", "war history"},
		avgCPM:   4.50, rangeLo: 2.5, rangeHi: 6.5, source: "Lenostube 2025",
	},
	"true_crime": {
		keywords: []string{"true crime", "crime documentary", "unsolved mysteries"},
		avgCPM:   4.00, rangeLo: 2, rangeHi: 6, source: "SMBillion 2025",
	},
	"outdoor_survival": {
		keywords: []string{"survival skills", "bushcraft", "camping tips", "hiking guide"},
		avgCPM:   4.50, rangeLo: 2.5, rangeHi: 6.5, source: "Lenostube 2025",
	},
	"pets_animals": {
		keywords: []string{"pet care", "dog training", "cat videos", "animal rescue"},
		avgCPM:   3.00, rangeLo: 1.5, rangeHi: 4.5, source: "Lenostube 2025",
	},
	"sports_commentary": {
		keywords: []string{"sports commentary", "sports highlights", "fantasy football"},
		avgCPM:   4.00, rangeLo: 2, rangeHi: 6, source: "r/PartneredYoutube 2025",
	},
	"unboxing_reviews": {
		keywords: []string{"unboxing", "product review", "haul video"},
		avgCPM:   3.50, rangeLo: 2, rangeHi: 5, source: "SMBillion 2025",
	},
	"asmr": {
		keywords: []string{"asmr", "relaxation sounds", "sleep sounds"},
		avgCPM:   1.20, rangeLo: 0.6, rangeHi: 2, source: "r/PartneredYoutube 2025",
	},
	"vlog_lifestyle": {
		keywords: []string{"daily vlog", "lifestyle vlog", "day in the life"},
		avgCPM:   2.50, rangeLo: 1.2, rangeHi: 4, source: "Lenostube 2025",
	},
}

// categoryFallbacks maps a parent-category substring to its blended CPM,
// used when nothing in database matches directly (spec §4.4 levels 4-5).
var categoryFallbacks = map[string]float64{
	"finance":       13.00,
	"technology":    8.00,
	"business":      10.00,
	"health":        6.00,
	"education":     7.00,
	"entertainment": 2.50,
	"lifestyle":     4.00,
	"creative":      2.50,
	"kids":          3.00,
	"gaming":        2.50,
}

// categoryHints maps a common substring to a parent category, mirroring
// the source's simple "first hint wins" inference table.
var categoryHints = []struct {
	hint     string
	category string
}{
	{"money", "finance"}, {"earn", "finance"}, {"invest", "finance"},
	{"stock", "finance"}, {"bank", "finance"}, {"wealth", "finance"},
	{"game", "gaming"}, {"play", "gaming"}, {"stream", "gaming"},
	{"tech", "technology"}, {"code", "technology"}, {"program", "technology"},
	{"software", "technology"}, {"app", "technology"},
	{"health", "health"}, {"fit", "health"}, {"diet", "health"}, {"workout", "health"},
	{"learn", "education"}, {"teach", "education"}, {"course", "education"}, {"school", "education"},
	{"vlog", "entertainment"}, {"react", "entertainment"}, {"funny", "entertainment"},
	{"comedy", "entertainment"}, {"anime", "entertainment"}, {"manga", "entertainment"},
	{"cook", "lifestyle"}, {"recipe", "lifestyle"}, {"travel", "lifestyle"},
	{"beauty", "lifestyle"}, {"fashion", "lifestyle"},
	{"draw", "creative"}, {"art", "creative"}, {"music", "creative"}, {"paint", "creative"},
	{"kid", "kids"}, {"child", "kids"}, {"nursery", "kids"},
	{"business", "business"}, {"market", "business"}, {"sell", "business"},
}

// geoMultipliers is keyed by upper-case ISO country code; unlisted
// countries default to 0.5 (spec §4.4).
var geoMultipliers = map[string]float64{
	"US": 1.00, "CA": 0.90, "GB": 0.85, "AU": 0.88, "DE": 0.75,
	"FR": 0.70, "NL": 0.78, "SE": 0.80, "NO": 0.82, "CH": 0.90,
	"JP": 0.60, "KR": 0.55, "SG": 0.70, "NZ": 0.80, "IE": 0.82,
	"IN": 0.15, "BR": 0.20, "MX": 0.25, "PH": 0.12, "ID": 0.12,
	"NG": 0.10, "PK": 0.10, "VN": 0.12, "EG": 0.12,
}

// seasonalMultipliers is keyed by calendar month (1-12); Q4 peaks toward
// the holiday ad-spend surge, January troughs as budgets reset.
var seasonalMultipliers = map[int]float64{
	1: 0.80, 2: 0.90, 3: 0.95, 4: 0.95, 5: 0.95, 6: 0.90,
	7: 0.85, 8: 0.90, 9: 1.00, 10: 1.10, 11: 1.25, 12: 1.35,
}

const defaultCPM = 3.00

// categoryOrder fixes iteration order over database so that tie-broken
// matches (equal score, first-hit-wins) are reproducible; Go map
// iteration order is randomized and would otherwise make ties flaky.
var categoryOrder = []string{
	"personal_finance", "investing", "cryptocurrency", "real_estate", "insurance",
	"software_development", "saas_business", "cybersecurity", "ai_tools", "technology_reviews",
	"digital_marketing", "entrepreneurship", "career_advice", "productivity",
	"fitness", "weight_loss", "nutrition", "mental_health",
	"cooking", "travel_vlog", "beauty_makeup", "fashion", "parenting", "home_improvement", "automotive",
	"gaming_lets_play", "gaming_esports", "mobile_gaming",
	"anime_manga", "movie_tv_commentary", "celebrity_gossip", "comedy_sketch", "reaction_content",
	"music_cover", "music_production", "art_drawing", "kids_education",
	"language_learning", "test_prep", "legal_advice", "b2b_saas_review",
	"science_education", "history_documentary", "true_crime", "outdoor_survival",
	"pets_animals", "sports_commentary", "unboxing_reviews", "asmr", "vlog_lifestyle",
}

// allKeywords returns every keyword across every category in
// categoryOrder, paired with its owning category name, for the
// fuzzy/substring match passes.
func allKeywords() []keywordRef {
	out := make([]keywordRef, 0, 256)
	for _, cat := range categoryOrder {
		for _, kw := range database[cat].keywords {
			out = append(out, keywordRef{keyword: kw, category: cat})
		}
	}
	return out
}

type keywordRef struct {
	keyword  string
	category string
}
