package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// AppConfig holds display settings
type AppConfig struct {
	Currency Currency `yaml:"currency" json:"currency"`
}

// ServerConfig holds web mode settings
type ServerConfig struct {
	Addr                 string   `yaml:"addr" json:"addr"`
	ExportsDir           string   `yaml:"exports_dir" json:"exports_dir"`
	ExportRetentionHours int      `yaml:"export_retention_hours" json:"export_retention_hours"` // 0 keeps exports forever
	OpenBrowser          bool     `yaml:"open_browser" json:"open_browser"`
	CORSOrigins          []string `yaml:"cors_origins" json:"cors_origins"`
}

// Config is the whole configuration file
type Config struct {
	App       AppConfig     `yaml:"app" json:"app"`
	Server    ServerConfig  `yaml:"server" json:"server"`
	Logging   LogConfig     `yaml:"logging" json:"logging"`
	Health    HealthForm    `yaml:"health" json:"health"`
	Portfolio PortfolioForm `yaml:"portfolio" json:"portfolio"`
}

// Environment variables that override the file
const (
	envAddr       = "FINTOOLS_ADDR"
	envLogLevel   = "FINTOOLS_LOG_LEVEL"
	envExportsDir = "FINTOOLS_EXPORTS_DIR"
	envCurrency   = "FINTOOLS_CURRENCY"
)

// LoadDefaultConfig parses the embedded default configuration
func LoadDefaultConfig() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &config); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}
	return &config, nil
}

// LoadConfig reads a YAML configuration file on top of the defaults, so a file
// only needs the keys it changes. A missing file returns the defaults together
// with an error satisfying os.IsNotExist.
func LoadConfig(filename string) (*Config, error) {
	config, err := LoadDefaultConfig()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return config, nil
}

// SaveConfig writes the configuration as YAML
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	header := []byte(`# Financial Tools Suite configuration
# Generated by -init-config - feel free to edit manually
#
# Amounts accept plain numbers or shorthand: 75000, 1.2L, 2cr, 100k

`)
	return os.WriteFile(filename, append(header, data...), 0644)
}

// ApplyEnv loads envFile (if present) and applies FINTOOLS_* overrides
func (c *Config) ApplyEnv(envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	if v := os.Getenv(envAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(envExportsDir); v != "" {
		c.Server.ExportsDir = v
	}
	if v := os.Getenv(envCurrency); v != "" {
		c.App.Currency = currencyForCode(v)
	}
	return nil
}

// currencyForCode maps an ISO code to display settings
func currencyForCode(code string) Currency {
	switch strings.ToUpper(code) {
	case "GBP":
		return Currency{Symbol: "£", Code: "GBP", PDFSymbol: "GBP", Grouping: GroupingWestern}
	case "USD":
		return Currency{Symbol: "$", Code: "USD", PDFSymbol: "$", Grouping: GroupingWestern}
	case "EUR":
		return Currency{Symbol: "€", Code: "EUR", PDFSymbol: "EUR", Grouping: GroupingWestern}
	default:
		return DefaultCurrency()
	}
}
