package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultCurrency(), config.App.Currency)
	assert.Equal(t, "localhost:0", config.Server.Addr)
	assert.Equal(t, "exports", config.Server.ExportsDir)
	assert.Equal(t, 24, config.Server.ExportRetentionHours)
	assert.Equal(t, []string{"*"}, config.Server.CORSOrigins)
	assert.Equal(t, "info", config.Logging.Level)

	assert.Equal(t, DefaultHealthInputs(), config.Health.Inputs())
	assert.Equal(t, PortfolioInputs{}, config.Portfolio.Inputs())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
	require.NotNil(t, config, "defaults are returned with the error")
	assert.Equal(t, DefaultCurrency(), config.App.Currency)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
portfolio:
  equity: 5L
  cash: "2,00,000"
health:
  monthly_income: 100000
  income_stability: 5
`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, PortfolioInputs{Equity: 500000, Cash: 200000}, config.Portfolio.Inputs())
	in := config.Health.Inputs()
	assert.Equal(t, 100000.0, in.MonthlyIncome)
	assert.Equal(t, 5, in.IncomeStability)
	assert.Equal(t, IncomeSalaried, in.IncomeSource)
	assert.Equal(t, "exports", config.Server.ExportsDir)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0644))

	config, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	config.Portfolio.Set(AssetEquity, "500000")
	config.Health.MonthlyIncome = "75000"
	config.Server.ExportRetentionHours = 0

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveConfig(config, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.Portfolio.Inputs(), loaded.Portfolio.Inputs())
	assert.Equal(t, config.Health.Inputs(), loaded.Health.Inputs())
	assert.Equal(t, 0, loaded.Server.ExportRetentionHours)
	assert.Equal(t, config.App, loaded.App)
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(envAddr, "127.0.0.1:9090")
	t.Setenv(envLogLevel, "DEBUG")
	t.Setenv(envExportsDir, "/tmp/reports")
	t.Setenv(envCurrency, "usd")

	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, config.ApplyEnv(filepath.Join(t.TempDir(), ".env")))

	assert.Equal(t, "127.0.0.1:9090", config.Server.Addr)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "/tmp/reports", config.Server.ExportsDir)
	assert.Equal(t, "USD", config.App.Currency.Code)
	assert.Equal(t, GroupingWestern, config.App.Currency.Grouping)
}

func TestConfig_ApplyEnvFromDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINTOOLS_CURRENCY=GBP\n"), 0644))
	t.Cleanup(func() { os.Unsetenv(envCurrency) })

	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, config.ApplyEnv(envFile))

	assert.Equal(t, "GBP", config.App.Currency.Code)
	assert.Equal(t, "GBP 1,000", config.App.Currency.FormatPDF(1000, 0))
}

func TestCurrencyForCode_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCurrency(), currencyForCode("XYZ"))
}
