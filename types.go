package main

import (
	"fmt"
	"math"
)

// IncomeSource is the kind of income the user declares. It is shown on reports
// but never affects scoring.
type IncomeSource string

const (
	IncomeSalaried IncomeSource = "Salaried"
	IncomeBusiness IncomeSource = "Business"
	IncomeMixed    IncomeSource = "Mixed"
)

// InvestmentFlags records which investment products the user currently holds
type InvestmentFlags struct {
	FixedDeposit        bool `yaml:"fd" json:"fd"`
	MutualFund          bool `yaml:"mf" json:"mf"`
	Shares              bool `yaml:"shares" json:"shares"`
	ProvidentFund       bool `yaml:"pf" json:"pf"`
	PublicProvidentFund bool `yaml:"ppf" json:"ppf"`
	Other               bool `yaml:"others" json:"others"`
}

// ActiveCount returns how many of the six investment products are held
func (f InvestmentFlags) ActiveCount() int {
	count := 0
	for _, held := range []bool{f.FixedDeposit, f.MutualFund, f.Shares, f.ProvidentFund, f.PublicProvidentFund, f.Other} {
		if held {
			count++
		}
	}
	return count
}

// HealthInputs is one snapshot of the financial health form, already coerced
// to numbers and booleans.
type HealthInputs struct {
	MonthlyIncome      float64         `json:"monthly_income"`
	IncomeSource       IncomeSource    `json:"income_source"`
	IncomeStability    int             `json:"income_stability"` // 1-5, chosen by the user
	MonthlyExpenses    float64         `json:"monthly_expenses"` // excluding EMIs
	EmergencyFund      float64         `json:"emergency_fund"`
	MonthlyEMIs        float64         `json:"monthly_emis"`
	Investments        InvestmentFlags `json:"investments"`
	RegularInvestments bool            `json:"regular_investments"`
	HealthInsurance    bool            `json:"health_insurance"`
	LifeInsurance      bool            `json:"life_insurance"`
}

// HealthScores holds the six sub-scores, each in [1,5]
type HealthScores struct {
	IncomeStability   int `json:"income_stability"`
	ExpenseManagement int `json:"expense_management"`
	EmergencyFund     int `json:"emergency_fund"`
	DebtManagement    int `json:"debt_management"`
	Investments       int `json:"investments"`
	Insurance         int `json:"insurance"`
}

// MaxFactorScore is the best score a single factor can reach
const MaxFactorScore = 5

// MaxTotalScore is the best total across all six factors
const MaxTotalScore = 6 * MaxFactorScore

// Total returns the sum of the six sub-scores
func (s HealthScores) Total() int {
	return s.IncomeStability + s.ExpenseManagement + s.EmergencyFund +
		s.DebtManagement + s.Investments + s.Insurance
}

// Tier classifies the total score
func (s HealthScores) Tier() HealthTier {
	return ClassifyHealth(s.Total())
}

// FactorScore is a labelled sub-score, in display order
type FactorScore struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Factors returns the six sub-scores with their display labels
func (s HealthScores) Factors() []FactorScore {
	return []FactorScore{
		{Key: "income_stability", Label: "Income Stability", Score: s.IncomeStability},
		{Key: "expense_management", Label: "Expense Management (Excluding EMI)", Score: s.ExpenseManagement},
		{Key: "emergency_fund", Label: "Emergency Fund", Score: s.EmergencyFund},
		{Key: "debt_management", Label: "Debt Management", Score: s.DebtManagement},
		{Key: "investments", Label: "Investments", Score: s.Investments},
		{Key: "insurance", Label: "Insurance Protection", Score: s.Insurance},
	}
}

// HealthTier is the qualitative band a total score falls into
type HealthTier int

const (
	TierNeedsAttention HealthTier = iota
	TierAverage
	TierGood
	TierExcellent
)

func (t HealthTier) String() string {
	switch t {
	case TierExcellent:
		return "Excellent"
	case TierGood:
		return "Good"
	case TierAverage:
		return "Average"
	default:
		return "Needs Attention"
	}
}

// Interpretation is the one-line reading shown under the tier
func (t HealthTier) Interpretation() string {
	switch t {
	case TierExcellent:
		return "Excellent Financial Health"
	case TierGood:
		return "Good, scope for optimization"
	case TierAverage:
		return "Average, needs improvement"
	default:
		return "Financial stress zone"
	}
}

// ColorKey is the style key the renderers use for the tier
func (t HealthTier) ColorKey() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierAverage:
		return "average"
	default:
		return "poor"
	}
}

// MarshalText lets the tier appear as its label in JSON and YAML
func (t HealthTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// HealthRatios are the derived figures the health form displays next to the
// inputs. Zero denominators give 0.
type HealthRatios struct {
	MonthlySavings float64 `json:"monthly_savings"`
	SavingsRatio   float64 `json:"savings_ratio"`   // percent of income
	EmergencyCover float64 `json:"emergency_cover"` // months of expenses
	DebtRatio      float64 `json:"debt_ratio"`      // percent of income
}

// HealthReport bundles everything a renderer needs for one health evaluation
type HealthReport struct {
	Inputs         HealthInputs  `json:"inputs"`
	Scores         HealthScores  `json:"scores"`
	Factors        []FactorScore `json:"factors"`
	Total          int           `json:"total"`
	MaxTotal       int           `json:"max_total"`
	Tier           HealthTier    `json:"tier"`
	Interpretation string        `json:"interpretation"`
	ColorKey       string        `json:"color_key"`
	Ratios         HealthRatios  `json:"ratios"`
}

// AssetClass identifies one of the five portfolio buckets
type AssetClass string

const (
	AssetEquity AssetClass = "equity"
	AssetDebt   AssetClass = "debt"
	AssetGold   AssetClass = "gold"
	AssetREIT   AssetClass = "reit"
	AssetCash   AssetClass = "cash"
)

// AssetClasses lists the buckets in display order
var AssetClasses = []AssetClass{AssetEquity, AssetDebt, AssetGold, AssetREIT, AssetCash}

// PortfolioInputs holds the amount invested in each asset class
type PortfolioInputs struct {
	Equity float64 `json:"equity"`
	Debt   float64 `json:"debt"`
	Gold   float64 `json:"gold"`
	REIT   float64 `json:"reit"`
	Cash   float64 `json:"cash"`
}

// Amount returns the amount held in one asset class
func (p PortfolioInputs) Amount(asset AssetClass) float64 {
	switch asset {
	case AssetEquity:
		return p.Equity
	case AssetDebt:
		return p.Debt
	case AssetGold:
		return p.Gold
	case AssetREIT:
		return p.REIT
	case AssetCash:
		return p.Cash
	default:
		return 0
	}
}

// Amounts returns the five amounts in AssetClasses order
func (p PortfolioInputs) Amounts() []float64 {
	amounts := make([]float64, len(AssetClasses))
	for i, asset := range AssetClasses {
		amounts[i] = p.Amount(asset)
	}
	return amounts
}

// AllocationStatus says how an asset class compares with its ideal share
type AllocationStatus string

const (
	StatusSurplus  AllocationStatus = "surplus"
	StatusDeficit  AllocationStatus = "deficit"
	StatusBalanced AllocationStatus = "balanced"
)

// RiskProfile is the investor type implied by the equity share
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// Label returns the capitalised profile name
func (r RiskProfile) Label() string {
	switch r {
	case RiskAggressive:
		return "Aggressive"
	case RiskModerate:
		return "Moderate"
	default:
		return "Conservative"
	}
}

// PercentRange is an inclusive target band, used for display only
type PercentRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Label renders the range the way the ideal table shows it ("40-60%", "5%")
func (r PercentRange) Label() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%g%%", r.Min)
	}
	return fmt.Sprintf("%g-%g%%", r.Min, r.Max)
}

// AllocationResult compares one asset class against the ideal allocation
type AllocationResult struct {
	Asset             AssetClass       `json:"asset"`
	IdealPercent      float64          `json:"ideal_percent"`
	ActualPercent     float64          `json:"actual_percent"`
	DifferencePercent float64          `json:"difference_percent"`
	Status            AllocationStatus `json:"status"`
	DeviationAmount   float64          `json:"deviation_amount"` // positive = excess, negative = shortfall
	Range             PercentRange     `json:"range"`
}

// AllocationOutcome is the full result of analysing a portfolio
type AllocationOutcome struct {
	TotalPortfolio    float64                `json:"total_portfolio"`
	ActualAllocations map[AssetClass]float64 `json:"actual_allocations"`
	RiskProfile       RiskProfile            `json:"risk_profile"`
	Results           []AllocationResult     `json:"results"`
}

// Analyzable reports whether there is anything to analyse. Callers should not
// surface an outcome whose total is zero or too large to represent.
func (o AllocationOutcome) Analyzable() bool {
	return o.TotalPortfolio > 0 && !math.IsInf(o.TotalPortfolio, 0)
}

// Result returns the comparison for one asset class
func (o AllocationOutcome) Result(asset AssetClass) (AllocationResult, bool) {
	for _, r := range o.Results {
		if r.Asset == asset {
			return r, true
		}
	}
	return AllocationResult{}, false
}

// RecommendationAction is the direction of a suggested rebalance
type RecommendationAction string

const (
	ActionIncrease RecommendationAction = "increase"
	ActionReduce   RecommendationAction = "reduce"
)

// Recommendation is a single rebalancing suggestion for an unbalanced class
type Recommendation struct {
	Asset   AssetClass           `json:"asset"`
	Action  RecommendationAction `json:"action"`
	Amount  float64              `json:"amount"`  // absolute deviation amount
	Percent float64              `json:"percent"` // absolute difference in percentage points
}
