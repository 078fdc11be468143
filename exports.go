package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// ReportExporter saves reports into the exports directory
type ReportExporter struct {
	dir      string
	currency Currency
	log      zerolog.Logger
}

// NewReportExporter creates an exporter writing into dir
func NewReportExporter(dir string, c Currency, log zerolog.Logger) *ReportExporter {
	return &ReportExporter{
		dir:      dir,
		currency: c,
		log:      log.With().Str("component", "exporter").Logger(),
	}
}

// Dir is the directory reports are written to
func (e *ReportExporter) Dir() string {
	return e.dir
}

// ExportHealth writes the health PDF and returns its path
func (e *ReportExporter) ExportHealth(rep HealthReport, now time.Time) (string, error) {
	meta := NewReportMeta(now)
	data, err := GenerateHealthPDFReport(rep, e.currency, meta)
	if err != nil {
		return "", err
	}
	return e.save("financial_health", ".pdf", meta, data)
}

// ExportPortfolio writes the portfolio PDF and returns its path
func (e *ReportExporter) ExportPortfolio(outcome AllocationOutcome, now time.Time) (string, error) {
	meta := NewReportMeta(now)
	data, err := GeneratePortfolioPDFReport(outcome, e.currency, meta)
	if err != nil {
		return "", err
	}
	return e.save("portfolio_analysis", ".pdf", meta, data)
}

// ExportPortfolioHTML writes the portfolio HTML page and returns its path
func (e *ReportExporter) ExportPortfolioHTML(outcome AllocationOutcome, now time.Time) (string, error) {
	meta := NewReportMeta(now)
	return e.render("portfolio_analysis", ".html", meta, func(w io.Writer) error {
		return WritePortfolioHTMLReport(w, outcome, e.currency, meta)
	})
}

// ExportHealthHTML writes the health HTML page and returns its path
func (e *ReportExporter) ExportHealthHTML(rep HealthReport, now time.Time) (string, error) {
	meta := NewReportMeta(now)
	return e.render("financial_health", ".html", meta, func(w io.Writer) error {
		return WriteHealthHTMLReport(w, rep, e.currency, meta)
	})
}

// ExportPortfolioCSV writes the per-class CSV and returns its path
func (e *ReportExporter) ExportPortfolioCSV(outcome AllocationOutcome, now time.Time) (string, error) {
	meta := NewReportMeta(now)
	return e.render("portfolio_analysis", ".csv", meta, func(w io.Writer) error {
		return WriteAllocationCSV(w, outcome)
	})
}

func (e *ReportExporter) render(prefix, ext string, meta ReportMeta, write func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return "", err
	}
	return e.save(prefix, ext, meta, buf.Bytes())
}

func (e *ReportExporter) save(prefix, ext string, meta ReportMeta, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create exports directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s%s", prefix, meta.Generated.Format("20060102-150405"), meta.ShortID(), ext)
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	e.log.Info().Str("path", path).Str("report_id", meta.ID).Int("bytes", len(data)).Msg("report exported")
	return path, nil
}
