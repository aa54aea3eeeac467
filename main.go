package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"ytniche/cache"
	"ytniche/config"
	"ytniche/domain/score"
	"ytniche/domain/scorer"
	"ytniche/orchestrator"
	"ytniche/platform/scraper"
	"ytniche/platform/trends"
	"ytniche/ui"
	"ytniche/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// opportunitySampleSize bounds the extra search call used to feed the
// legacy Opportunity Score view (spec §4.2's SearchVideos, re-sampled
// rather than reusing the niche-score pipeline's own fetch, since the
// orchestrator doesn't expose its raw sample).
const opportunitySampleSize = 20

// fallbackTrendsProvider always errors, so trends.Client falls back to its
// keyword-seed heuristic (platform/trends/client.go). The CLI ships no
// Google Trends credentials of its own.
type fallbackTrendsProvider struct{}

func (fallbackTrendsProvider) Average(ctx context.Context, keyword string) (int, error) {
	return 0, fmt.Errorf("no trends provider configured")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig := config.LoadConfig()

	var (
		niche        = flag.String("niche", "", "Niche keyword to analyze")
		mode         = flag.String("mode", "analyze", "Operation: analyze, channels, competitors")
		minDuration  = flag.Float64("min-duration", appConfig.LongFormThresholdMins, "Minimum long-form duration in minutes for rising-star filtering")
		profile      = flag.String("profile", "", "Apply a legacy Opportunity Score weight profile (exploration, evergreen, trending, balanced)")
		nicheProfile = flag.String("niche-profile", "balanced", "Niche-score weight profile (balanced, monetization_first, trend_chaser, low_competition)")
		profiles     = flag.Bool("profiles", false, "Show available weight profiles and exit")
		help         = flag.Bool("help", false, "Show help")
		version      = flag.Bool("version", false, "Show version")
	)
	flag.Parse()

	if *version {
		fmt.Println("ytniche v1.0.0")
		return
	}
	if *help {
		showHelp()
		return
	}
	if *profiles {
		config.DisplayProfiles()
		return
	}
	if *profile != "" {
		if err := appConfig.ApplyProfile(*profile); err != nil {
			ui.DisplayError(fmt.Sprintf("failed to apply profile '%s': %v", *profile, err))
			return
		}
		ui.DisplaySuccess(fmt.Sprintf("Applied profile: %s", *profile))
	}

	ui.DisplayWelcome()

	if *niche == "" {
		showHelp()
		return
	}

	runAnalysis(appConfig, *niche, *mode, *minDuration, *nicheProfile)
}

func showHelp() {
	fmt.Println("ytniche - YouTube Niche Opportunity Analyzer")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  ytniche -niche \"<keyword>\" [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -niche string         Niche keyword to analyze (required)")
	fmt.Println("  -mode string          analyze, channels, or competitors (default: analyze)")
	fmt.Println("  -min-duration float   Long-form duration threshold in minutes (default: 40)")
	fmt.Println("  -profile string       Legacy Opportunity Score weight profile")
	fmt.Println("  -niche-profile string Niche-score factor weight profile (default: balanced)")
	fmt.Println("  -profiles             Show available weight profiles and exit")
	fmt.Println("  -help                 Show help")
	fmt.Println("  -version              Show version")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  ytniche -niche \"ai tools for creators\"")
	fmt.Println("  ytniche -niche \"budgeting for beginners\" -mode competitors")
	fmt.Println("  ytniche -niche \"home workout routines\" -mode channels -min-duration 20")
	fmt.Println()
}

func runAnalysis(appConfig *config.AppConfig, niche, mode string, minDuration float64, nicheProfile string) {
	scraperCache := cache.New(appConfig.CacheTTL)
	gw := scraper.New(scraper.Config{
		Binary:  appConfig.ScraperBinary,
		Timeout: appConfig.ScraperTimeout,
		Cache:   scraperCache,
	})
	tr := trends.New(fallbackTrendsProvider{}, zerolog.Nop())
	sc := scorer.NewService(gw, tr, 1)
	orch := orchestrator.New(gw, tr, sc, scraperCache, appConfig.RequestDeadline)

	weights := config.GetNicheWeightProfile(nicheProfile)

	stop := utils.ShowLoading(fmt.Sprintf("Analyzing '%s'...", niche))
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.RequestDeadline)
	defer cancel()

	switch mode {
	case "channels":
		res, err := orch.Channels(ctx, niche, minDuration)
		stop()
		if err != nil {
			ui.DisplayError(err.Error())
			return
		}
		ui.DisplayRisingStars(res)
	case "competitors":
		res, err := orch.Competitors(ctx, niche)
		stop()
		if err != nil {
			ui.DisplayError(err.Error())
			return
		}
		ui.DisplayCompetitors(res)
	default:
		res, err := orch.Analyze(ctx, niche, minDuration)
		stop()
		if err != nil {
			ui.DisplayError(err.Error())
			return
		}
		ui.DisplayNicheScore(niche, res.NicheScore)
		fmt.Printf("Weighted total (%s profile): %.1f\n\n", nicheProfile, config.WeightedTotal(res.NicheScore, weights))
		ui.DisplayRecommendations(res.Recommendations)
		if res.RisingStarUnavailable {
			ui.DisplayWarning("Rising-star discovery was unavailable for this request")
		} else {
			ui.DisplayRisingStars(res.RisingStarChannels)
		}
		fmt.Printf("Elapsed: %dms  scraper calls: %d  trends calls: %d\n",
			res.Performance.ElapsedMs, res.Performance.ScraperCalls, res.Performance.TrendsCalls)

		if items, err := opportunityScores(ctx, gw, appConfig, niche); err != nil {
			ui.DisplayWarning(fmt.Sprintf("Opportunity Score view unavailable: %v", err))
		} else {
			ui.DisplayOpportunityScore(items)
		}
	}
}

// opportunityScores re-samples the niche's search results and ranks them
// with the legacy Opportunity Score formula (domain/score.Compute), so the
// -profile flag's weights show up somewhere in the CLI's output.
func opportunityScores(ctx context.Context, gw scraper.Gateway, appConfig *config.AppConfig, niche string) ([]score.Item, error) {
	searchRes, err := gw.Search(ctx, niche, opportunitySampleSize, scraper.SearchVideos)
	if err != nil {
		return nil, err
	}

	items := searchRes.Items[scraper.KindVideo]
	videos := make([]score.Video, 0, len(items))
	for _, it := range items {
		publishedAt, _ := time.Parse(time.RFC3339, it.PublishedAt)
		var views int64
		if it.ViewCount != nil {
			views = *it.ViewCount
		}
		videos = append(videos, score.Video{
			Title:       it.Title,
			Channel:     it.ChannelTitle,
			URL:         "https://www.youtube.com/watch?v=" + it.ID,
			Views:       views,
			PublishedAt: publishedAt,
		})
	}

	weights := score.Weights{
		VPD:   appConfig.OppWeightVPD,
		Like:  appConfig.OppWeightLike,
		Fresh: appConfig.OppWeightFresh,
		Sat:   appConfig.OppWeightSatPen,
		Slope: appConfig.OppWeightSlope,
	}
	return score.Compute(videos, weights, time.Now()), nil
}
