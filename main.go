package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Financial Tools Suite

Two personal finance calculators:

  FINANCIAL HEALTH CALCULATOR
    Scores income stability, expense management, emergency fund, debt,
    investments and insurance from 1 to 5 each, for a total out of 30.
    26+ is Excellent, 21-25 Good, 15-20 Average, below 15 Needs Attention.

  INVESTMENT PORTFOLIO ANALYZER
    Compares amounts held in equity, debt, gold, REITs and cash against an
    ideal allocation, flags classes more than 2 points off target, suggests
    rebalancing amounts and classifies the risk profile from the equity share.

MODES:
  Console (default)   Interactive menu in the terminal
  Web (-web)          Browser UI served locally
  Batch               -health and/or -portfolio evaluate the snapshot stored
                      in the config file and print the result

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                                Interactive console
  %s -web                           Open the browser UI
  %s -init-config                   Write config.yaml with defaults
  %s -portfolio -pdf -csv           Analyse the configured portfolio and save reports
  %s -health -html -config my.yaml  Score the configured health form

Environment (also read from .env):
  FINTOOLS_ADDR, FINTOOLS_LOG_LEVEL, FINTOOLS_EXPORTS_DIR, FINTOOLS_CURRENCY (INR, USD, GBP, EUR)
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	configFile := flag.String("config", "config.yaml", "Path to configuration file")
	consoleMode := flag.Bool("console", false, "Run the interactive console (default mode)")
	webMode := flag.Bool("web", false, "Start the web UI")
	addr := flag.String("addr", "", "Web server address (overrides server.addr)")
	healthMode := flag.Bool("health", false, "Score the health form from the config file")
	portfolioMode := flag.Bool("portfolio", false, "Analyse the portfolio from the config file")
	pdfOut := flag.Bool("pdf", false, "Save PDF reports for batch runs")
	htmlOut := flag.Bool("html", false, "Save HTML reports for batch runs")
	csvOut := flag.Bool("csv", false, "Save the portfolio CSV for batch runs")
	initConfig := flag.Bool("init-config", false, "Write the default configuration to -config and exit")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logPretty := flag.Bool("log-pretty", true, "Human-readable log output")
	flag.Parse()

	if *initConfig {
		config, err := LoadDefaultConfig()
		if err == nil {
			err = SaveConfig(config, *configFile)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *configFile, err)
			os.Exit(1)
		}
		fmt.Printf("Default configuration written to %s\n", *configFile)
		return
	}

	config, err := LoadConfig(*configFile)
	configMissing := errors.Is(err, fs.ErrNotExist)
	if err != nil && !configMissing {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			config.Logging.Level = *logLevel
		case "log-pretty":
			config.Logging.Pretty = *logPretty
		case "addr":
			config.Server.Addr = *addr
		}
	})

	log := NewLogger(config.Logging)
	if configMissing {
		log.Debug().Str("config", *configFile).Msg("config file not found, using defaults")
	}
	exporter := NewReportExporter(config.Server.ExportsDir, config.App.Currency, log)

	switch {
	case *webMode:
		err = runWebMode(config, exporter, log)
	case (*healthMode || *portfolioMode) && !*consoleMode:
		opts := batchOptions{health: *healthMode, portfolio: *portfolioMode, pdf: *pdfOut, html: *htmlOut, csv: *csvOut}
		err = runBatchMode(os.Stdout, config, exporter, opts, log)
	default:
		err = NewConsoleSession(os.Stdin, os.Stdout, config, exporter, log).Run()
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

// runWebMode serves the UI until interrupted, pruning old exports meanwhile
func runWebMode(config *Config, exporter *ReportExporter, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	retention := time.Duration(config.Server.ExportRetentionHours) * time.Hour
	janitor := NewExportJanitor(exporter.Dir(), retention, log)
	if _, err := janitor.Prune(time.Now()); err != nil {
		log.Warn().Err(err).Msg("initial prune failed")
	}
	if err := janitor.Start(); err != nil {
		return err
	}
	defer janitor.Stop()

	return NewWebServer(config, exporter, log).Start(ctx, config.Server.Addr)
}

type batchOptions struct {
	health, portfolio bool
	pdf, html, csv    bool
}

// runBatchMode evaluates the config snapshots and prints or saves the results
func runBatchMode(out io.Writer, config *Config, exporter *ReportExporter, opts batchOptions, log zerolog.Logger) error {
	now := time.Now()
	c := config.App.Currency
	var saved []string

	if opts.health {
		rep := EvaluateHealth(config.Health.Inputs())
		PrintHealthReport(out, rep, c)
		fmt.Fprintln(out)
		if opts.pdf {
			path, err := exporter.ExportHealth(rep, now)
			if err != nil {
				return err
			}
			saved = append(saved, path)
		}
		if opts.html {
			path, err := exporter.ExportHealthHTML(rep, now)
			if err != nil {
				return err
			}
			saved = append(saved, path)
		}
	}

	if opts.portfolio {
		outcome := ComputeAllocation(config.Portfolio.Inputs())
		if !outcome.Analyzable() {
			return fmt.Errorf("configured portfolio: %w", ErrInsufficientData)
		}
		PrintPortfolioReport(out, outcome, c)
		fmt.Fprintln(out)

		exports := []struct {
			on  bool
			run func(AllocationOutcome, time.Time) (string, error)
		}{
			{opts.pdf, exporter.ExportPortfolio},
			{opts.html, exporter.ExportPortfolioHTML},
			{opts.csv, exporter.ExportPortfolioCSV},
		}
		for _, e := range exports {
			if !e.on {
				continue
			}
			path, err := e.run(outcome, now)
			if err != nil {
				return err
			}
			saved = append(saved, path)
		}
	}

	for _, path := range saved {
		fmt.Fprintf(out, "Saved %s\n", path)
	}
	log.Debug().Int("reports", len(saved)).Msg("batch run complete")
	return nil
}

// openBrowser opens a URL in the default browser
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
