package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// errQuit ends the console session
var errQuit = errors.New("quit")

// ConsoleSession runs both calculators as a menu-driven terminal program
type ConsoleSession struct {
	reader    *bufio.Reader
	out       io.Writer
	nav       *Navigator
	currency  Currency
	exports   *ReportExporter
	health    HealthForm
	portfolio PortfolioForm
	log       zerolog.Logger
}

// NewConsoleSession creates a session reading from in and writing to out.
// Forms start from the snapshots in config.
func NewConsoleSession(in io.Reader, out io.Writer, config *Config, exports *ReportExporter, log zerolog.Logger) *ConsoleSession {
	return &ConsoleSession{
		reader:    bufio.NewReader(in),
		out:       out,
		nav:       NewNavigator(),
		currency:  config.App.Currency,
		exports:   exports,
		health:    config.Health,
		portfolio: config.Portfolio,
		log:       log.With().Str("component", "console").Logger(),
	}
}

// Run shows screens until the user quits or input ends
func (s *ConsoleSession) Run() error {
	for {
		var err error
		switch s.nav.Current() {
		case ScreenHome:
			err = s.home()
		case ScreenHealthForm:
			err = s.healthScreen()
		case ScreenPortfolioForm:
			err = s.portfolioScreen()
		}
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *ConsoleSession) home() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, titleStyle.Render("FINANCIAL TOOLS SUITE"))
	fmt.Fprintln(s.out, "Choose a calculator to analyze your financial well-being")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "  1) Financial Health Calculator")
	fmt.Fprintln(s.out, "     Evaluate your overall financial health score across six factors")
	fmt.Fprintln(s.out, "  2) Investment Portfolio Analyzer")
	fmt.Fprintln(s.out, "     Compare your asset allocation against an ideal portfolio")
	fmt.Fprintln(s.out, "  q) Quit")
	fmt.Fprintln(s.out)

	choice, err := s.promptString("Select", "")
	if err != nil {
		return err
	}
	if choice == "q" || choice == "quit" {
		return errQuit
	}

	screen, err := ParseScreen(choice)
	if err != nil {
		fmt.Fprintf(s.out, "  ✗ %s\n", err)
		return nil
	}
	if err := s.nav.Select(screen); err != nil {
		fmt.Fprintf(s.out, "  ✗ %s\n", err)
	}
	return nil
}

func (s *ConsoleSession) healthScreen() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, titleStyle.Render("FINANCIAL HEALTH CALCULATOR"))
	fmt.Fprintln(s.out, mutedStyle.Render("Amounts accept shorthand such as 75000, 1.2L or 2cr. Press Enter to keep a value."))
	fmt.Fprintln(s.out)

	fields := []struct {
		prompt string
		value  *FormValue
	}{
		{"Monthly income", &s.health.MonthlyIncome},
		{"Income source (Salaried/Business/Mixed)", &s.health.IncomeSource},
		{"Income stability (1-5)", &s.health.IncomeStability},
		{"Monthly expenses excluding EMIs", &s.health.MonthlyExpenses},
		{"Emergency fund", &s.health.EmergencyFund},
		{"Monthly EMIs", &s.health.MonthlyEMIs},
		{"Holds fixed deposits (yes/no)", &s.health.Investments.FD},
		{"Holds mutual funds (yes/no)", &s.health.Investments.MF},
		{"Holds shares (yes/no)", &s.health.Investments.Shares},
		{"Holds provident fund (yes/no)", &s.health.Investments.PF},
		{"Holds PPF (yes/no)", &s.health.Investments.PPF},
		{"Holds other investments (yes/no)", &s.health.Investments.Others},
		{"Invests regularly (Yes/No)", &s.health.RegularInvestments},
		{"Has health insurance (Yes/No)", &s.health.HealthInsurance},
		{"Has life insurance (Yes/No)", &s.health.LifeInsurance},
	}
	for _, f := range fields {
		if err := s.promptField(f.prompt, f.value); err != nil {
			return err
		}
	}

	rep := EvaluateHealth(s.health.Inputs())
	s.log.Debug().Int("total", rep.Total).Str("tier", rep.Tier.String()).Msg("health evaluated")

	fmt.Fprintln(s.out)
	PrintHealthReport(s.out, rep, s.currency)
	return s.resultMenu(func() error {
		s.health = DefaultHealthForm()
		return nil
	}, func() (string, error) {
		return s.exports.ExportHealth(rep, time.Now())
	})
}

func (s *ConsoleSession) portfolioScreen() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, titleStyle.Render("INVESTMENT PORTFOLIO ANALYZER"))
	fmt.Fprintln(s.out)
	PrintIdealAllocation(s.out)

	for _, asset := range AssetClasses {
		value := s.portfolio.Field(asset)
		if err := s.promptField(AssetCatalog[asset].Label, value); err != nil {
			return err
		}
	}

	outcome := ComputeAllocation(s.portfolio.Inputs())
	fmt.Fprintln(s.out)
	if !outcome.Analyzable() {
		fmt.Fprintln(s.out, "Enter your investment amounts to see the analysis.")
		return s.resultMenu(s.resetPortfolio, nil)
	}

	s.log.Debug().Float64("total", outcome.TotalPortfolio).Str("risk", string(outcome.RiskProfile)).Msg("portfolio analyzed")
	PrintPortfolioReport(s.out, outcome, s.currency)
	return s.resultMenu(s.resetPortfolio, func() (string, error) {
		return s.exports.ExportPortfolio(outcome, time.Now())
	})
}

func (s *ConsoleSession) resetPortfolio() error {
	s.portfolio = PortfolioForm{}
	return nil
}

// resultMenu offers edit, reset, export and back after a result is shown.
// export may be nil when there is nothing to save.
func (s *ConsoleSession) resultMenu(reset func() error, export func() (string, error)) error {
	for {
		options := "[e]dit  [r]eset  [b]ack  [q]uit"
		if export != nil && s.exports != nil {
			options = "[e]dit  [r]eset  [s]ave PDF  [b]ack  [q]uit"
		}
		fmt.Fprintln(s.out)
		choice, err := s.promptString(options, "e")
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "e", "edit":
			return nil
		case "r", "reset":
			return reset()
		case "s", "save":
			if export == nil || s.exports == nil {
				continue
			}
			path, err := export()
			if err != nil {
				s.log.Error().Err(err).Msg("export failed")
				fmt.Fprintf(s.out, "  ✗ %s\n", err)
				continue
			}
			fmt.Fprintf(s.out, "  ✓ Saved %s\n", path)
		case "b", "back":
			return s.nav.Back()
		case "q", "quit":
			return errQuit
		}
	}
}

// promptField asks for a form value, keeping the current one on Enter
func (s *ConsoleSession) promptField(prompt string, value *FormValue) error {
	input, err := s.promptString(prompt, string(*value))
	if err != nil {
		return err
	}
	*value = FormValue(input)
	return nil
}

// promptString asks for a string with a default value. io.EOF is returned
// once input ends with nothing typed.
func (s *ConsoleSession) promptString(prompt, defaultVal string) (string, error) {
	if defaultVal != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", prompt, defaultVal)
	} else {
		fmt.Fprintf(s.out, "%s: ", prompt)
	}
	input, err := s.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if err != nil && input == "" {
		return "", err
	}
	if input == "" {
		return defaultVal, nil
	}
	return input, nil
}
