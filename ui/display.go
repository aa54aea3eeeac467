package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ytniche/discovery/competitor"
	"ytniche/discovery/risingstar"
	"ytniche/domain/recommend"
	"ytniche/domain/score"
	"ytniche/domain/scorer"
	"ytniche/utils"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

// Colors and styles
var (
	primaryColor   = lipgloss.Color("#FF6B6B") // Red
	secondaryColor = lipgloss.Color("#4ECDC4") // Cyan
	accentColor    = lipgloss.Color("#45B7D1") // Blue
	textColor      = lipgloss.Color("#FFFFFF") // White
	successColor   = lipgloss.Color("#27AE60") // Green
	warningColor   = lipgloss.Color("#F39C12") // Yellow
	errorColor     = lipgloss.Color("#E74C3C") // Red
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Margin(1, 0).
			Align(lipgloss.Center)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true).
			Margin(0, 0, 1, 0).
			Align(lipgloss.Center)

	infoStyle = lipgloss.NewStyle().
			Foreground(textColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Margin(1, 0, 0, 0)
)

func DisplayWelcome() {
	fmt.Println(titleStyle.Render("🚀 YTNiche"))
	fmt.Println(subtitleStyle.Render("YouTube Niche Opportunity Analyzer"))
	fmt.Println()
}

// DisplayNicheScore renders the five-factor breakdown and grade (spec §3).
func DisplayNicheScore(niche string, ns scorer.NicheScore) {
	fmt.Println(sectionStyle.Render(fmt.Sprintf("📊 Niche Score: %s", niche)))
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Factor", "Score", "Max", "Provenance"})
	table.SetBorder(true)
	table.SetCenterSeparator("|")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")

	rows := []struct {
		name string
		f    scorer.Factor
	}{
		{"Search Volume", ns.SearchVolume},
		{"Competition", ns.Competition},
		{"Monetization", ns.Monetization},
		{"Content Availability", ns.ContentAvailability},
		{"Trend Momentum", ns.TrendMomentum},
	}
	for _, row := range rows {
		table.Append([]string{
			row.name,
			fmt.Sprintf("%.1f", row.f.Score),
			fmt.Sprintf("%.1f", row.f.Max),
			row.f.Provenance,
		})
	}
	table.Render()

	fmt.Printf("\nTotal: %.1f  Grade: %s\n\n", ns.Total, ns.Grade)
}

// DisplayRecommendations renders C7's ranked niche variants.
func DisplayRecommendations(recs []recommend.Recommendation) {
	if len(recs) == 0 {
		fmt.Println(warningStyle.Render("No recommendations available"))
		return
	}
	fmt.Println(headerStyle.Render("💡 Recommended Variants"))
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Niche", "Score", "Better?", "Confidence"})
	for _, r := range recs {
		better := "no"
		if r.Better {
			better = "yes"
		}
		table.Append([]string{r.Niche, fmt.Sprintf("%.1f", r.Score), better, string(r.Confidence)})
	}
	table.Render()
	fmt.Println()
}

// DisplayRisingStars renders C8's discovered channels.
func DisplayRisingStars(res risingstar.Result) {
	if len(res.Channels) == 0 {
		fmt.Println(warningStyle.Render("No rising-star channels found"))
		return
	}
	fmt.Println(headerStyle.Render("⭐ Rising-Star Channels"))
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Channel", "Subs", "Views", "Videos", "Content Type", "Score"})
	for _, ch := range res.Channels {
		table.Append([]string{
			ch.Name,
			utils.FormatNumber(ch.Subscribers),
			utils.FormatNumber(ch.TotalViews),
			strconv.Itoa(ch.SampleVideoCount),
			string(ch.ContentType),
			fmt.Sprintf("%.1f", ch.Score.Total),
		})
	}
	table.Render()

	fmt.Printf("\nBest opportunity: %s (filtered %d short-duration candidates of %d total)\n\n",
		res.Summary.BestOpportunity, res.Summary.FilteredByDuration, res.Summary.TotalCandidates)
}

// DisplayCompetitors renders C9's saturation report.
func DisplayCompetitors(report competitor.SaturationReport) {
	fmt.Println(headerStyle.Render("🏁 Competitor Saturation"))
	fmt.Println()
	fmt.Printf("Level: %s (score %d, %d unique channels)\n", report.SaturationLevel, report.SaturationScore, report.ChannelCount)
	fmt.Printf("Tiers: micro=%d small=%d medium=%d large=%d\n\n",
		report.TierBreakdown.Micro, report.TierBreakdown.Small, report.TierBreakdown.Medium, report.TierBreakdown.Large)

	if len(report.TopCompetitors) == 0 {
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Channel", "Subs", "Avg Views", "Tier"})
	for _, c := range report.TopCompetitors {
		table.Append([]string{c.Name, utils.FormatNumber(c.Subscribers), utils.FormatNumber(c.AvgViews), string(c.SubscriberTier)})
	}
	table.Render()
	fmt.Println()
}

func DisplayError(message string) {
	fmt.Println(errorStyle.Render("❌ Error: " + message))
	fmt.Println()
}

func DisplaySuccess(message string) {
	fmt.Println(successStyle.Render("✅ " + message))
	fmt.Println()
}

func DisplayWarning(message string) {
	fmt.Println(warningStyle.Render("⚠️ " + message))
	fmt.Println()
}

func DisplayInfo(message string) {
	fmt.Println(infoStyle.Render("ℹ️ " + message))
	fmt.Println()
}

func DisplayMarkdown(content string) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	out, _ := r.Render(content)
	fmt.Print(out)
}

// DisplayOpportunityScore renders the classic VPD/like/freshness/saturation
// ranking (the teacher's original Opportunity Score, kept as a
// supplementary view over its own, separately fetched search sample).
func DisplayOpportunityScore(items []score.Item) {
	if len(items) == 0 {
		DisplayWarning("No opportunity candidates found")
		return
	}
	fmt.Printf("\n🚀 Opportunity Score (Top Candidates)\n\n")
	fmt.Printf("%-6s  %-48s  %-8s  %-8s  %-6s  %-10s  %s\n", "Rank", "Title", "Score", "VPD", "Age", "Like/1k", "Why")
	fmt.Println(strings.Repeat("-", 120))
	for i, it := range items {
		why := strings.Join(it.Reasons, ", ")
		if len(why) > 60 {
			why = why[:60] + "…"
		}
		title := it.Title
		if len(title) > 48 {
			title = title[:48] + "…"
		}
		fmt.Printf("#%-5d  %-48s  %8.2f  %8s  %4dd  %10.2f  %s\n",
			i+1,
			title,
			it.Score,
			utils.FormatVPD(it.VPD),
			it.AgeDays,
			it.LikeRate,
			why,
		)
	}
	fmt.Println()
}
