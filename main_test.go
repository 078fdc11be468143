package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchConfig(t *testing.T) *Config {
	t.Helper()
	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	config.Portfolio = PortfolioForm{Equity: "5L", Debt: "2L", Gold: "50k", REIT: "50k", Cash: "2L"}
	config.Health.MonthlyIncome = "100000"
	config.Health.MonthlyExpenses = "60000"
	return config
}

func TestRunBatchMode(t *testing.T) {
	config := batchConfig(t)
	dir := t.TempDir()
	exporter := NewReportExporter(dir, config.App.Currency, zerolog.Nop())

	var out bytes.Buffer
	opts := batchOptions{health: true, portfolio: true, pdf: true, html: true, csv: true}
	require.NoError(t, runBatchMode(&out, config, exporter, opts, zerolog.Nop()))

	assert.Contains(t, out.String(), "FINANCIAL HEALTH SCORE")
	assert.Contains(t, out.String(), "PORTFOLIO ALLOCATION ANALYSIS")
	assert.Equal(t, 5, bytes.Count(out.Bytes(), []byte("Saved ")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestRunBatchMode_PrintOnly(t *testing.T) {
	config := batchConfig(t)
	dir := t.TempDir()
	exporter := NewReportExporter(dir, config.App.Currency, zerolog.Nop())

	var out bytes.Buffer
	require.NoError(t, runBatchMode(&out, config, exporter, batchOptions{portfolio: true}, zerolog.Nop()))

	assert.Contains(t, out.String(), "Total Investment: ₹10,00,000")
	assert.NotContains(t, out.String(), "FINANCIAL HEALTH SCORE")
	assert.NotContains(t, out.String(), "Saved ")
}

func TestRunBatchMode_EmptyPortfolio(t *testing.T) {
	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	exporter := NewReportExporter(t.TempDir(), config.App.Currency, zerolog.Nop())

	var out bytes.Buffer
	err = runBatchMode(&out, config, exporter, batchOptions{portfolio: true, csv: true}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInsufficientData)
}
