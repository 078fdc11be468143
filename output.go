package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Advisory texts shown under every report
const (
	healthAdvisory = "This calculator provides an indicative overview of your financial health. " +
		"Detailed financial planning should consider tax efficiency, risk profile, age, " +
		"life goals, and other personal circumstances. Consult a certified financial " +
		"advisor for personalized recommendations."

	portfolioDisclaimer = "This analysis is based on general investment principles and your stated portfolio. " +
		"Actual investment decisions should consider your age, financial goals, risk tolerance, " +
		"tax situation, and other personal factors. Please consult a certified financial advisor " +
		"before making any investment decisions."
)

// Colours shared by the console, HTML and PDF renderers
var (
	tierColors = map[string]string{
		"excellent": "#10b981",
		"good":      "#eab308",
		"average":   "#f97316",
		"poor":      "#ef4444",
	}
	statusColors = map[AllocationStatus]string{
		StatusSurplus:  "#b45309",
		StatusDeficit:  "#dc2626",
		StatusBalanced: "#10b981",
	}
	riskColors = map[RiskProfile]string{
		RiskConservative: "#10b981",
		RiskModerate:     "#f59e0b",
		RiskAggressive:   "#ef4444",
	}
)

const brandColor = "#6366f1"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(brandColor)).
			Padding(0, 2)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#858392"))
)

func badge(text, hex string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(hex)).
		Padding(0, 1).
		Render(text)
}

func colored(text, hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
}

// scoreBar draws a score out of MaxFactorScore as filled and empty blocks
func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > MaxFactorScore {
		score = MaxFactorScore
	}
	return strings.Repeat("█", score*2) + strings.Repeat("░", (MaxFactorScore-score)*2)
}

// PrintHealthReport writes the health score card
func PrintHealthReport(w io.Writer, rep HealthReport, c Currency) {
	fmt.Fprintln(w, titleStyle.Render("FINANCIAL HEALTH SCORE"))
	fmt.Fprintln(w)

	in := rep.Inputs
	fmt.Fprintln(w, sectionStyle.Render("Your Details"))
	fmt.Fprintf(w, "  %-30s %s (%s)\n", "Monthly Income:", c.Format(in.MonthlyIncome, 2), in.IncomeSource)
	fmt.Fprintf(w, "  %-30s %s\n", "Monthly Expenses (excl. EMI):", c.Format(in.MonthlyExpenses, 2))
	fmt.Fprintf(w, "  %-30s %s\n", "Monthly EMIs:", c.Format(in.MonthlyEMIs, 2))
	fmt.Fprintf(w, "  %-30s %s\n", "Emergency Fund:", c.Format(in.EmergencyFund, 2))
	fmt.Fprintf(w, "  %-30s %s\n", "Monthly Savings:", c.Format(rep.Ratios.MonthlySavings, 2))
	fmt.Fprintf(w, "  %-30s %.1f%%\n", "Savings Ratio:", rep.Ratios.SavingsRatio)
	fmt.Fprintf(w, "  %-30s %.1f months\n", "Emergency Cover:", rep.Ratios.EmergencyCover)
	fmt.Fprintf(w, "  %-30s %.1f%%\n", "Debt Ratio:", rep.Ratios.DebtRatio)
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Scores"))
	for _, f := range rep.Factors {
		fmt.Fprintf(w, "  %-36s %s %d/%d\n", f.Label, scoreBar(f.Score), f.Score, MaxFactorScore)
	}
	fmt.Fprintln(w, "  "+strings.Repeat("─", 52))
	fmt.Fprintf(w, "  %-36s %d/%d\n", "Total", rep.Total, rep.MaxTotal)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s  %s\n", badge(rep.Tier.String(), tierColors[rep.ColorKey]), rep.Interpretation)
	fmt.Fprintln(w)
	fmt.Fprintln(w, mutedStyle.Render(wrapText(healthAdvisory, 76)))
}

// PrintPortfolioReport writes the allocation analysis. The caller checks
// Analyzable first.
func PrintPortfolioReport(w io.Writer, outcome AllocationOutcome, c Currency) {
	fmt.Fprintln(w, titleStyle.Render("PORTFOLIO ALLOCATION ANALYSIS"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Total Investment: %s\n", c.Format(outcome.TotalPortfolio, 2))
	fmt.Fprintf(w, "  Risk Profile:     %s\n", badge(outcome.RiskProfile.Label()+" Investor", riskColors[outcome.RiskProfile]))
	fmt.Fprintf(w, "  %s\n", outcome.RiskSummary())
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Allocation"))
	fmt.Fprintf(w, "  %-26s %8s %8s %9s  %-9s %s\n", "ASSET CLASS", "ACTUAL", "TARGET", "DIFF", "STATUS", "ACTION REQUIRED")
	fmt.Fprintln(w, "  "+strings.Repeat("─", 80))
	for _, r := range outcome.Results {
		status := fmt.Sprintf("%-9s", strings.ToUpper(string(r.Status)))
		fmt.Fprintf(w, "  %-26s %7.1f%% %7s%% %+8.1f%%  %s %s\n",
			AssetCatalog[r.Asset].ShortLabel,
			r.ActualPercent,
			strconv.FormatFloat(r.IdealPercent, 'f', -1, 64),
			r.DifferencePercent,
			colored(status, statusColors[r.Status]),
			r.ActionText(c))
	}
	fmt.Fprintln(w)

	recs := outcome.Recommendations()
	fmt.Fprintln(w, sectionStyle.Render("Key Recommendations"))
	if len(recs) == 0 {
		fmt.Fprintln(w, "  Your portfolio is well balanced. No changes needed.")
	}
	for _, rec := range recs {
		fmt.Fprintf(w, "  • %s\n", rec.Text(c))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, mutedStyle.Render(wrapText(portfolioDisclaimer, 76)))
}

// PrintIdealAllocation writes the reference table shown on the portfolio form
func PrintIdealAllocation(w io.Writer) {
	fmt.Fprintln(w, sectionStyle.Render("Ideal Asset Allocation"))
	for _, asset := range AssetClasses {
		info := AssetCatalog[asset]
		fmt.Fprintf(w, "  %-32s %-8s %s\n", info.Label, IdealRanges[asset].Label(), mutedStyle.Render(info.Purpose))
	}
	fmt.Fprintln(w)
}

// wrapText breaks text into lines no longer than width
func wrapText(text string, width int) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
