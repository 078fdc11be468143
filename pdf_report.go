package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	headerHeight = 35.0
	pieRadius    = 32.0
)

// pdfReport holds the state shared by both PDF layouts
type pdfReport struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	currency Currency
	meta     ReportMeta
}

func newPDFReport(c Currency, meta ReportMeta) *pdfReport {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	r := &pdfReport{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		currency: c.ForPDF(),
		meta:     meta,
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(140, 140, 140)
		pdf.CellFormat(contentWidth, 5,
			fmt.Sprintf("Report ID: %s | Page %d", meta.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	return r
}

// GeneratePortfolioPDFReport renders the allocation analysis as an A4 PDF
func GeneratePortfolioPDFReport(outcome AllocationOutcome, c Currency, meta ReportMeta) ([]byte, error) {
	if !outcome.Analyzable() {
		return nil, ErrInsufficientData
	}

	r := newPDFReport(c, meta)
	r.pdf.AddPage()
	r.drawHeaderBand("Wealth Portfolio Analysis")

	y := headerHeight + 10
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.Rect(marginLeft, y, contentWidth, 25, "F")
	r.pdf.SetTextColor(30, 41, 59)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.Text(marginLeft+5, y+10, r.tr("Total Investment: "+r.currency.Format(outcome.TotalPortfolio, 2)))
	r.pdf.Text(marginLeft+5, y+18, "Risk Profile: "+outcome.RiskProfile.Label()+" Investor")

	y += 40
	half := contentWidth / 2
	r.drawPie("Your Current Portfolio", marginLeft, y, half, outcome.ActualAllocations)
	r.drawPie("Ideal Portfolio", marginLeft+half, y, half, IdealAllocation)

	r.pdf.SetY(y + 2*pieRadius + 38)
	r.drawActionTable(outcome)

	r.pdf.Ln(8)
	r.drawSectionHeader("Key Recommendations")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.MultiCell(contentWidth, 5, r.tr(outcome.RiskSummary()), "", "L", false)
	r.pdf.Ln(2)
	recs := outcome.Recommendations()
	if len(recs) == 0 {
		r.pdf.MultiCell(contentWidth, 5, "Your portfolio is well balanced. No changes needed.", "", "L", false)
	}
	for _, rec := range recs {
		r.pdf.MultiCell(contentWidth, 5, r.tr("- "+rec.Text(r.currency)), "", "L", false)
	}

	r.drawNote("Important Disclaimer", portfolioDisclaimer)
	return r.output()
}

// GenerateHealthPDFReport renders the health score card as an A4 PDF
func GenerateHealthPDFReport(rep HealthReport, c Currency, meta ReportMeta) ([]byte, error) {
	r := newPDFReport(c, meta)
	r.pdf.AddPage()
	r.drawHeaderBand("Financial Health Report")

	y := headerHeight + 10
	cr, cg, cb := hexRGB(tierColors[rep.ColorKey])
	r.pdf.SetFillColor(cr, cg, cb)
	r.pdf.Rect(marginLeft, y, 40, 25, "F")
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.SetXY(marginLeft, y+4)
	r.pdf.CellFormat(40, 10, fmt.Sprintf("%d / %d", rep.Total, rep.MaxTotal), "", 2, "C", false, 0, "")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.CellFormat(40, 6, "Total Score", "", 0, "C", false, 0, "")

	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.Rect(marginLeft+45, y, contentWidth-45, 25, "F")
	r.pdf.SetTextColor(cr, cg, cb)
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.Text(marginLeft+50, y+10, rep.Tier.String())
	r.pdf.SetTextColor(30, 41, 59)
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.Text(marginLeft+50, y+18, rep.Interpretation)

	r.pdf.SetXY(marginLeft, y+35)
	r.drawSectionHeader("Your Details")
	in := rep.Inputs
	widths := []float64{90, 90}
	r.drawTableHeader([]string{"Item", "Value"}, widths)
	rows := [][]string{
		{"Monthly Income", r.currency.Format(in.MonthlyIncome, 2)},
		{"Income Source", string(in.IncomeSource)},
		{"Income Stability", fmt.Sprintf("%d / %d", in.IncomeStability, MaxFactorScore)},
		{"Monthly Expenses (excl. EMI)", r.currency.Format(in.MonthlyExpenses, 2)},
		{"Monthly EMIs", r.currency.Format(in.MonthlyEMIs, 2)},
		{"Emergency Fund", r.currency.Format(in.EmergencyFund, 2)},
		{"Investments Held", investmentList(in.Investments)},
		{"Regular Investments", yesNo(in.RegularInvestments)},
		{"Health Insurance", yesNo(in.HealthInsurance)},
		{"Life Insurance", yesNo(in.LifeInsurance)},
		{"Monthly Savings", r.currency.Format(rep.Ratios.MonthlySavings, 2)},
		{"Savings Ratio", fmt.Sprintf("%.1f%%", rep.Ratios.SavingsRatio)},
		{"Emergency Cover", fmt.Sprintf("%.1f months", rep.Ratios.EmergencyCover)},
		{"Debt Ratio", fmt.Sprintf("%.1f%%", rep.Ratios.DebtRatio)},
	}
	for _, row := range rows {
		r.drawTableRow(row, widths, false)
	}

	r.pdf.Ln(8)
	r.drawSectionHeader("Score Breakdown")
	for _, f := range rep.Factors {
		r.drawScoreBar(f)
	}

	r.drawNote("Advisory Note", healthAdvisory)
	return r.output()
}

func (r *pdfReport) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) drawHeaderBand(title string) {
	br, bg, bb := hexRGB(brandColor)
	r.pdf.SetFillColor(br, bg, bb)
	r.pdf.Rect(0, 0, pageWidth, headerHeight, "F")
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.Text(marginLeft, 18, title)
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.Text(marginLeft, 28, r.tr(fmt.Sprintf("Generated: %s | Currency: %s (%s)",
		r.meta.displayDate(), r.currency.Code, strings.TrimSpace(r.currency.Symbol))))
}

// drawPie draws a titled pie chart with its legend in a column of width w
func (r *pdfReport) drawPie(title string, x, y, w float64, values map[AssetClass]float64) {
	r.pdf.SetTextColor(30, 41, 59)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetXY(x, y-8)
	r.pdf.CellFormat(w, 6, title, "", 0, "C", false, 0, "")

	cx, cy := x+w/2, y+pieRadius
	r.pdf.SetDrawColor(255, 255, 255)
	r.pdf.SetLineWidth(0.6)
	for _, s := range pieSlices(values) {
		pts := arcPoints(cx, cy, pieRadius, s)
		poly := make([]fpdf.PointType, len(pts))
		for i, p := range pts {
			poly[i] = fpdf.PointType{X: p[0], Y: p[1]}
		}
		cr, cg, cb := hexRGB(AssetCatalog[s.Asset].Color)
		r.pdf.SetFillColor(cr, cg, cb)
		r.pdf.Polygon(poly, "FD")
	}
	r.pdf.SetLineWidth(0.2)

	ly := y + 2*pieRadius + 5
	r.pdf.SetFont("Arial", "", 8)
	for _, asset := range AssetClasses {
		cr, cg, cb := hexRGB(AssetCatalog[asset].Color)
		r.pdf.SetFillColor(cr, cg, cb)
		r.pdf.Rect(x+10, ly, 3, 3, "F")
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.Text(x+15, ly+2.6, r.tr(fmt.Sprintf("%s: %.1f%%", AssetCatalog[asset].ShortLabel, values[asset])))
		ly += 5
	}
}

// drawActionTable is the ASSET CLASS / ACTUAL / TARGET / STATUS / ACTION grid
func (r *pdfReport) drawActionTable(outcome AllocationOutcome) {
	y := r.pdf.GetY()
	cols := []float64{marginLeft + 3, marginLeft + 55, marginLeft + 80, marginLeft + 105, marginLeft + 135}

	br, bg, bb := hexRGB(brandColor)
	r.pdf.SetFillColor(br, bg, bb)
	r.pdf.Rect(marginLeft, y, contentWidth, 10, "F")
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	headers := []string{"ASSET CLASS", "ACTUAL", "TARGET", "STATUS", "ACTION REQUIRED (" + strings.TrimSpace(r.currency.Symbol) + ")"}
	for i, h := range headers {
		r.pdf.Text(cols[i], y+6.5, r.tr(h))
	}
	y += 10

	r.pdf.SetFont("Arial", "", 9)
	for i, res := range outcome.Results {
		if i%2 == 0 {
			r.pdf.SetFillColor(248, 250, 252)
			r.pdf.Rect(marginLeft, y, contentWidth, 10, "F")
		}
		r.pdf.SetTextColor(30, 41, 59)
		r.pdf.Text(cols[0], y+6.5, r.tr(AssetCatalog[res.Asset].ShortLabel))
		r.pdf.Text(cols[1], y+6.5, fmt.Sprintf("%.1f%%", res.ActualPercent))
		r.pdf.Text(cols[2], y+6.5, strconv.FormatFloat(res.IdealPercent, 'f', -1, 64)+"%")

		sr, sg, sb := hexRGB(statusColors[res.Status])
		r.pdf.SetTextColor(sr, sg, sb)
		r.pdf.Text(cols[3], y+6.5, strings.ToUpper(string(res.Status)))

		r.pdf.SetTextColor(30, 41, 59)
		r.pdf.Text(cols[4], y+6.5, res.ActionText(r.currency))
		y += 10
	}
	r.pdf.SetY(y)
}

// drawScoreBar draws one factor as a labelled horizontal bar
func (r *pdfReport) drawScoreBar(f FactorScore) {
	const barX, barW, barH = marginLeft + 80, 80.0, 5.0
	y := r.pdf.GetY()

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.Text(marginLeft, y+4, f.Label)

	r.pdf.SetFillColor(226, 232, 240)
	r.pdf.Rect(barX, y, barW, barH, "F")
	br, bg, bb := hexRGB(brandColor)
	r.pdf.SetFillColor(br, bg, bb)
	r.pdf.Rect(barX, y, barW*float64(f.Score)/MaxFactorScore, barH, "F")

	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.Text(barX+barW+4, y+4, fmt.Sprintf("%d/%d", f.Score, MaxFactorScore))
	r.pdf.SetY(y + 8)
}

func (r *pdfReport) drawNote(title, text string) {
	r.pdf.Ln(8)
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetTextColor(30, 41, 59)
	r.pdf.CellFormat(contentWidth, 6, title, "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(contentWidth, 4.5, text, "", "L", false)
}

func (r *pdfReport) drawSectionHeader(title string) {
	br, bg, bb := hexRGB(brandColor)
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(br, bg, bb)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(br, bg, bb)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(4)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	br, bg, bb := hexRGB(brandColor)
	r.pdf.SetFillColor(br, bg, bb)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, "L", true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}
	for i, cell := range cells {
		r.pdf.CellFormat(widths[i], 5, r.tr(cell), "1", 0, "L", true, 0, "")
	}
	r.pdf.Ln(-1)
}

// investmentList names the investment products held, or "None"
func investmentList(f InvestmentFlags) string {
	var held []string
	for _, item := range []struct {
		on   bool
		name string
	}{
		{f.FixedDeposit, "FD"},
		{f.MutualFund, "MF"},
		{f.Shares, "Shares"},
		{f.ProvidentFund, "PF"},
		{f.PublicProvidentFund, "PPF"},
		{f.Other, "Others"},
	} {
		if item.on {
			held = append(held, item.name)
		}
	}
	if len(held) == 0 {
		return "None"
	}
	return strings.Join(held, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
