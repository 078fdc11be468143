package main

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// FormValue is a raw form entry exactly as the user typed it. JSON numbers,
// booleans and null are accepted as well as strings so browser clients can
// post their native values.
type FormValue string

// UnmarshalJSON keeps the literal text of any JSON scalar
func (v *FormValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*v = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		*v = FormValue(raw)
	}
	return nil
}

// InvestmentForm holds the six investment checkboxes
type InvestmentForm struct {
	FD     FormValue `yaml:"fd" json:"fd"`
	MF     FormValue `yaml:"mf" json:"mf"`
	Shares FormValue `yaml:"shares" json:"shares"`
	PF     FormValue `yaml:"pf" json:"pf"`
	PPF    FormValue `yaml:"ppf" json:"ppf"`
	Others FormValue `yaml:"others" json:"others"`
}

// HealthForm is the financial health form before coercion
type HealthForm struct {
	MonthlyIncome      FormValue      `yaml:"monthly_income" json:"monthlyIncome"`
	IncomeSource       FormValue      `yaml:"income_source" json:"incomeSource"`
	IncomeStability    FormValue      `yaml:"income_stability" json:"incomeStability"`
	MonthlyExpenses    FormValue      `yaml:"monthly_expenses" json:"monthlyExpenses"`
	EmergencyFund      FormValue      `yaml:"emergency_fund" json:"emergencyFund"`
	MonthlyEMIs        FormValue      `yaml:"monthly_emis" json:"monthlyEMIs"`
	Investments        InvestmentForm `yaml:"investments" json:"investments"`
	RegularInvestments FormValue      `yaml:"regular_investments" json:"regularInvestments"`
	HealthInsurance    FormValue      `yaml:"health_insurance" json:"healthInsurance"`
	LifeInsurance      FormValue      `yaml:"life_insurance" json:"lifeInsurance"`
}

// DefaultHealthForm is the blank form shown on start and after a reset
func DefaultHealthForm() HealthForm {
	return HealthForm{
		IncomeSource:       FormValue(IncomeSalaried),
		IncomeStability:    FormValue(strconv.Itoa(DefaultIncomeStability)),
		RegularInvestments: "No",
		HealthInsurance:    "No",
		LifeInsurance:      "No",
	}
}

// Inputs coerces the form into scorer inputs
func (f HealthForm) Inputs() HealthInputs {
	return HealthInputs{
		MonthlyIncome:   ParseAmount(string(f.MonthlyIncome)),
		IncomeSource:    ParseIncomeSource(string(f.IncomeSource)),
		IncomeStability: ParseRating(string(f.IncomeStability)),
		MonthlyExpenses: ParseAmount(string(f.MonthlyExpenses)),
		EmergencyFund:   ParseAmount(string(f.EmergencyFund)),
		MonthlyEMIs:     ParseAmount(string(f.MonthlyEMIs)),
		Investments: InvestmentFlags{
			FixedDeposit:        ParseYesNo(string(f.Investments.FD)),
			MutualFund:          ParseYesNo(string(f.Investments.MF)),
			Shares:              ParseYesNo(string(f.Investments.Shares)),
			ProvidentFund:       ParseYesNo(string(f.Investments.PF)),
			PublicProvidentFund: ParseYesNo(string(f.Investments.PPF)),
			Other:               ParseYesNo(string(f.Investments.Others)),
		},
		RegularInvestments: ParseYesNo(string(f.RegularInvestments)),
		HealthInsurance:    ParseYesNo(string(f.HealthInsurance)),
		LifeInsurance:      ParseYesNo(string(f.LifeInsurance)),
	}
}

// PortfolioForm is the portfolio analyzer form before coercion
type PortfolioForm struct {
	Equity FormValue `yaml:"equity" json:"equity"`
	Debt   FormValue `yaml:"debt" json:"debt"`
	Gold   FormValue `yaml:"gold" json:"gold"`
	REIT   FormValue `yaml:"reit" json:"reit"`
	Cash   FormValue `yaml:"cash" json:"cash"`
}

// Inputs coerces the form into analyzer inputs
func (f PortfolioForm) Inputs() PortfolioInputs {
	return PortfolioInputs{
		Equity: ParseAmount(string(f.Equity)),
		Debt:   ParseAmount(string(f.Debt)),
		Gold:   ParseAmount(string(f.Gold)),
		REIT:   ParseAmount(string(f.REIT)),
		Cash:   ParseAmount(string(f.Cash)),
	}
}

// Field returns the raw value for one asset class
func (f *PortfolioForm) Field(asset AssetClass) *FormValue {
	switch asset {
	case AssetDebt:
		return &f.Debt
	case AssetGold:
		return &f.Gold
	case AssetREIT:
		return &f.REIT
	case AssetCash:
		return &f.Cash
	default:
		return &f.Equity
	}
}

// Set stores a raw value for one asset class
func (f *PortfolioForm) Set(asset AssetClass, value string) {
	*f.Field(asset) = FormValue(value)
}

var amountSuffixes = []struct {
	suffix     string
	multiplier float64
}{
	{"crore", 1e7},
	{"lakh", 1e5},
	{"cr", 1e7},
	{"k", 1e3},
	{"l", 1e5},
	{"m", 1e6},
}

// ParseAmount parses money strings like "75000", "₹1,20,000", "1.5L", "2cr"
// or "100k". Empty, unparseable, negative or non-finite amounts give 0.
func ParseAmount(input string) float64 {
	input = strings.TrimSpace(strings.ToLower(input))
	for _, prefix := range []string{"₹", "rs.", "rs", "inr", "£", "$"} {
		input = strings.TrimPrefix(input, prefix)
	}
	input = strings.ReplaceAll(input, ",", "")
	input = strings.ReplaceAll(input, "_", "")
	input = strings.TrimSpace(input)

	multiplier := 1.0
	for _, s := range amountSuffixes {
		if strings.HasSuffix(input, s.suffix) {
			multiplier = s.multiplier
			input = strings.TrimSpace(strings.TrimSuffix(input, s.suffix))
			break
		}
	}

	val, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0
	}
	val *= multiplier
	if math.IsNaN(val) || math.IsInf(val, 0) || val < 0 {
		return 0
	}
	return val
}

// ParseYesNo reads a Yes/No radio or checkbox value. Anything unrecognised is No.
func ParseYesNo(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y", "true", "on", "1":
		return true
	default:
		return false
	}
}

// ParseRating reads the 1-5 income stability rating. Unparseable text gives
// DefaultIncomeStability; numbers outside 1-5 are clamped.
func ParseRating(input string) int {
	input = strings.TrimSpace(input)
	f, err := strconv.ParseFloat(input, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return DefaultIncomeStability
	}
	if math.IsNaN(f) {
		return DefaultIncomeStability
	}
	// clamp before converting; int() of an out-of-range float is undefined
	return int(math.Max(1, math.Min(f, MaxFactorScore)))
}

// ParseIncomeSource reads the income source select. The default is Salaried.
func ParseIncomeSource(input string) IncomeSource {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "business":
		return IncomeBusiness
	case "mixed":
		return IncomeMixed
	default:
		return IncomeSalaried
	}
}
