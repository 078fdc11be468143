package main

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

const htmlStyle = `    <style>
        :root {
            --primary: #6366f1;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
        }
        header { background: var(--primary); color: #fff; padding: 1.5rem 2rem; }
        header h1 { font-size: 1.75rem; }
        header p { opacity: 0.85; font-size: 0.9rem; }
        .container { max-width: 1000px; margin: 0 auto; padding: 2rem; }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid-2 { display: grid; gap: 1rem; grid-template-columns: repeat(2, 1fr); }
        @media (max-width: 768px) { .grid-2 { grid-template-columns: 1fr; } }
        .chart { text-align: center; }
        .legend { list-style: none; font-size: 0.85rem; text-align: left; display: inline-block; }
        .swatch { display: inline-block; width: 10px; height: 10px; border-radius: 2px; margin-right: 6px; }
        table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
        th { background: var(--primary); color: #fff; text-align: left; padding: 0.6rem; }
        td { padding: 0.6rem; border-bottom: 1px solid var(--border); }
        tr:nth-child(even) td { background: #f8fafc; }
        .badge { display: inline-block; padding: 0.25rem 0.75rem; border-radius: 999px; color: #fff; font-weight: 600; }
        .status { font-weight: 700; text-transform: uppercase; }
        .bar { background: var(--border); border-radius: 4px; height: 12px; width: 100%; }
        .bar > span { display: block; height: 100%; border-radius: 4px; background: var(--primary); }
        .score-total { font-size: 2.5rem; font-weight: 700; }
        .muted { color: var(--text-muted); font-size: 0.85rem; }
        .advisory { border-left: 4px solid var(--primary); }
        footer { color: var(--text-muted); font-size: 0.75rem; text-align: center; padding: 1rem; }
    </style>
`

func writeHTMLHead(w io.Writer, title string, c Currency, meta ReportMeta) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
%s</head>
<body>
<header>
    <h1>%s</h1>
    <p>Generated: %s | Currency: %s (%s)</p>
</header>
<div class="container">
`, html.EscapeString(title), htmlStyle, html.EscapeString(title),
		meta.displayDate(), html.EscapeString(c.Code), html.EscapeString(c.Symbol))
}

func writeHTMLFoot(w io.Writer, noteTitle, note string, meta ReportMeta) {
	fmt.Fprintf(w, `<div class="card advisory">
    <h3>%s</h3>
    <p class="muted">%s</p>
</div>
</div>
<footer>Report ID: %s</footer>
</body>
</html>
`, html.EscapeString(noteTitle), html.EscapeString(note), html.EscapeString(meta.ID))
}

// WritePortfolioHTMLReport writes the allocation analysis as a self-contained page
func WritePortfolioHTMLReport(out io.Writer, outcome AllocationOutcome, c Currency, meta ReportMeta) error {
	if !outcome.Analyzable() {
		return ErrInsufficientData
	}

	w := bufio.NewWriter(out)
	writeHTMLHead(w, "Wealth Portfolio Analysis", c, meta)

	fmt.Fprintf(w, `<div class="card">
    <p><strong>Total Investment:</strong> %s</p>
    <p><strong>Risk Profile:</strong> <span class="badge" style="background:%s">%s Investor</span></p>
    <p class="muted">%s</p>
</div>
`, html.EscapeString(c.Format(outcome.TotalPortfolio, 2)),
		riskColors[outcome.RiskProfile], outcome.RiskProfile.Label(),
		html.EscapeString(outcome.RiskSummary()))

	fmt.Fprintln(w, `<div class="grid-2">`)
	writeHTMLPie(w, "Your Current Portfolio", outcome.ActualAllocations)
	writeHTMLPie(w, "Ideal Portfolio", IdealAllocation)
	fmt.Fprintln(w, `</div>`)

	fmt.Fprintln(w, `<h2>Portfolio Analysis</h2>
<div class="card">
<table>
<tr><th>Asset Class</th><th>Actual</th><th>Target</th><th>Ideal Range</th><th>Difference</th><th>Status</th><th>Action Required</th></tr>`)
	for _, r := range outcome.Results {
		fmt.Fprintf(w, "<tr><td>%s</td><td>%.1f%%</td><td>%s%%</td><td>%s</td><td>%+.1f%%</td><td class=\"status\" style=\"color:%s\">%s</td><td>%s</td></tr>\n",
			html.EscapeString(AssetCatalog[r.Asset].ShortLabel),
			r.ActualPercent,
			strconv.FormatFloat(r.IdealPercent, 'f', -1, 64),
			r.Range.Label(),
			r.DifferencePercent,
			statusColors[r.Status], r.Status,
			html.EscapeString(r.StatusNote(c)))
	}
	fmt.Fprintln(w, `</table>
</div>`)

	fmt.Fprintln(w, `<h2>Key Recommendations</h2>
<div class="card">
<ul>`)
	recs := outcome.Recommendations()
	if len(recs) == 0 {
		fmt.Fprintln(w, "<li>Your portfolio is well balanced. No changes needed.</li>")
	}
	for _, rec := range recs {
		fmt.Fprintf(w, "<li>%s</li>\n", html.EscapeString(rec.Text(c)))
	}
	fmt.Fprintln(w, `</ul>
</div>`)

	writeHTMLFoot(w, "Important Disclaimer", portfolioDisclaimer, meta)
	return w.Flush()
}

// WriteHealthHTMLReport writes the health score card as a self-contained page
func WriteHealthHTMLReport(out io.Writer, rep HealthReport, c Currency, meta ReportMeta) error {
	w := bufio.NewWriter(out)
	writeHTMLHead(w, "Financial Health Report", c, meta)

	color := tierColors[rep.ColorKey]
	fmt.Fprintf(w, `<div class="card">
    <div class="score-total" style="color:%s">%d / %d</div>
    <p><span class="badge" style="background:%s">%s</span> %s</p>
</div>
`, color, rep.Total, rep.MaxTotal, color, rep.Tier, html.EscapeString(rep.Interpretation))

	in := rep.Inputs
	fmt.Fprintln(w, `<h2>Your Details</h2>
<div class="card">
<table>`)
	rows := [][2]string{
		{"Monthly Income", c.Format(in.MonthlyIncome, 2)},
		{"Income Source", string(in.IncomeSource)},
		{"Monthly Expenses (excl. EMI)", c.Format(in.MonthlyExpenses, 2)},
		{"Monthly EMIs", c.Format(in.MonthlyEMIs, 2)},
		{"Emergency Fund", c.Format(in.EmergencyFund, 2)},
		{"Investments Held", investmentList(in.Investments)},
		{"Regular Investments", yesNo(in.RegularInvestments)},
		{"Health Insurance", yesNo(in.HealthInsurance)},
		{"Life Insurance", yesNo(in.LifeInsurance)},
		{"Monthly Savings", c.Format(rep.Ratios.MonthlySavings, 2)},
		{"Savings Ratio", fmt.Sprintf("%.1f%%", rep.Ratios.SavingsRatio)},
		{"Emergency Cover", fmt.Sprintf("%.1f months", rep.Ratios.EmergencyCover)},
		{"Debt Ratio", fmt.Sprintf("%.1f%%", rep.Ratios.DebtRatio)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td></tr>\n", html.EscapeString(row[0]), html.EscapeString(row[1]))
	}
	fmt.Fprintln(w, `</table>
</div>`)

	fmt.Fprintln(w, `<h2>Score Breakdown</h2>
<div class="card">
<table>`)
	for _, f := range rep.Factors {
		fmt.Fprintf(w, "<tr><td>%s</td><td style=\"width:50%%\"><div class=\"bar\"><span style=\"width:%d%%\"></span></div></td><td>%d/%d</td></tr>\n",
			html.EscapeString(f.Label), f.Score*100/MaxFactorScore, f.Score, MaxFactorScore)
	}
	fmt.Fprintln(w, `</table>
</div>`)

	writeHTMLFoot(w, "Advisory Note", healthAdvisory, meta)
	return w.Flush()
}

// writeHTMLPie writes a titled SVG pie chart with a legend
func writeHTMLPie(w io.Writer, title string, values map[AssetClass]float64) {
	fmt.Fprintf(w, `<div class="card chart">
    <h3>%s</h3>
    %s
    <ul class="legend">
`, html.EscapeString(title), svgPie(values, 100))
	for _, asset := range AssetClasses {
		info := AssetCatalog[asset]
		fmt.Fprintf(w, "        <li><span class=\"swatch\" style=\"background:%s\"></span>%s: %.1f%%</li>\n",
			info.Color, html.EscapeString(info.ShortLabel), values[asset])
	}
	fmt.Fprintln(w, `    </ul>
</div>`)
}

// svgPie renders values as an SVG pie of the given radius
func svgPie(values map[AssetClass]float64, radius float64) string {
	size := 2 * radius
	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="pie" width="%g" height="%g" viewBox="0 0 %g %g">`, size, size, size, size)

	slices := pieSlices(values)
	if len(slices) == 1 {
		fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="%s"/>`,
			radius, radius, radius, AssetCatalog[slices[0].Asset].Color)
	} else {
		for _, s := range slices {
			x1, y1 := point(radius, radius, radius, s.Start)
			x2, y2 := point(radius, radius, radius, s.End)
			large := 0
			if s.Fraction > 0.5 {
				large = 1
			}
			fmt.Fprintf(&b, `<path d="M%g,%g L%.2f,%.2f A%g,%g 0 %d,1 %.2f,%.2f Z" fill="%s" stroke="#fff" stroke-width="2"/>`,
				radius, radius, x1, y1, radius, radius, large, x2, y2, AssetCatalog[s.Asset].Color)
		}
	}
	b.WriteString(`</svg>`)
	return b.String()
}
