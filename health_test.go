package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func excellentInputs() HealthInputs {
	return HealthInputs{
		MonthlyIncome:   100000,
		IncomeSource:    IncomeSalaried,
		IncomeStability: 5,
		MonthlyExpenses: 60000,
		EmergencyFund:   240000,
		MonthlyEMIs:     15000,
		Investments: InvestmentFlags{
			FixedDeposit:  true,
			MutualFund:    true,
			ProvidentFund: true,
		},
		RegularInvestments: true,
		HealthInsurance:    true,
		LifeInsurance:      true,
	}
}

func TestComputeHealthScores_WorkedExample(t *testing.T) {
	scores := ComputeHealthScores(excellentInputs())

	assert.Equal(t, HealthScores{
		IncomeStability:   5,
		ExpenseManagement: 5,
		EmergencyFund:     4,
		DebtManagement:    5,
		Investments:       5,
		Insurance:         5,
	}, scores)
	assert.Equal(t, 29, scores.Total())
	assert.Equal(t, TierExcellent, scores.Tier())
}

func TestComputeHealthScores_ZeroIncome(t *testing.T) {
	in := excellentInputs()
	in.MonthlyIncome = 0

	scores := ComputeHealthScores(in)

	assert.Equal(t, 1, scores.ExpenseManagement, "no income means no savings ratio")
	assert.Equal(t, 5, scores.DebtManagement, "no income means a zero debt ratio")
}

func TestComputeHealthScores_ZeroExpenses(t *testing.T) {
	in := excellentInputs()
	in.MonthlyExpenses = 0

	scores := ComputeHealthScores(in)

	assert.Equal(t, 1, scores.EmergencyFund)
	assert.Equal(t, 5, scores.ExpenseManagement)
}

func TestComputeHealthScores_IncomeStabilityPassesThrough(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		in := DefaultHealthInputs()
		in.IncomeStability = rating
		assert.Equal(t, rating, ComputeHealthScores(in).IncomeStability)
	}
}

func TestScoreSavingsRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  int
	}{
		{"negative savings", -20, 1},
		{"zero", 0, 1},
		{"just under one", 0.99, 1},
		{"one percent", 1, 2},
		{"nine point nine", 9.9, 2},
		{"ten", 10, 3},
		{"twenty", 20, 4},
		{"twenty nine", 29.99, 4},
		{"thirty", 30, 5},
		{"everything saved", 100, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreSavingsRatio(tt.ratio))
		})
	}
}

func TestScoreEmergencyCover(t *testing.T) {
	tests := []struct {
		months float64
		want   int
	}{
		{0, 1},
		{0.5, 1},
		{1, 2},
		{2.9, 2},
		{3, 3},
		{4, 4},
		{5.99, 4},
		{6, 5},
		{24, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreEmergencyCover(tt.months), "months=%v", tt.months)
	}
}

func TestScoreDebtRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{0, 5},
		{20, 5},
		{20.01, 4},
		{30, 4},
		{40, 3},
		{50, 2},
		{50.01, 1},
		{120, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreDebtRatio(tt.ratio), "ratio=%v", tt.ratio)
	}
}

func TestScoreInvestments(t *testing.T) {
	tests := []struct {
		name    string
		flags   InvestmentFlags
		regular bool
		want    int
	}{
		{"nothing held", InvestmentFlags{}, false, 1},
		{"nothing held but regular", InvestmentFlags{}, true, 1},
		{"only fd", InvestmentFlags{FixedDeposit: true}, false, 3},
		{"one product regular", InvestmentFlags{Shares: true}, true, 3},
		{"two products irregular", InvestmentFlags{Shares: true, MutualFund: true}, false, 3},
		{"two products regular", InvestmentFlags{Shares: true, MutualFund: true}, true, 4},
		{"three products irregular", InvestmentFlags{Shares: true, MutualFund: true, PublicProvidentFund: true}, false, 3},
		{"three products regular", InvestmentFlags{Shares: true, MutualFund: true, PublicProvidentFund: true}, true, 5},
		{"all six regular", InvestmentFlags{true, true, true, true, true, true}, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreInvestments(tt.flags, tt.regular))
		})
	}
}

func TestScoreInsurance(t *testing.T) {
	assert.Equal(t, 5, scoreInsurance(true, true))
	assert.Equal(t, 3, scoreInsurance(true, false))
	assert.Equal(t, 3, scoreInsurance(false, true))
	assert.Equal(t, 1, scoreInsurance(false, false))
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		total int
		want  HealthTier
	}{
		{6, TierNeedsAttention},
		{14, TierNeedsAttention},
		{15, TierAverage},
		{20, TierAverage},
		{21, TierGood},
		{25, TierGood},
		{26, TierExcellent},
		{30, TierExcellent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyHealth(tt.total), "total=%d", tt.total)
	}
}

func TestHealthTier_Text(t *testing.T) {
	assert.Equal(t, "Excellent Financial Health", TierExcellent.Interpretation())
	assert.Equal(t, "Good, scope for optimization", TierGood.Interpretation())
	assert.Equal(t, "Average, needs improvement", TierAverage.Interpretation())
	assert.Equal(t, "Financial stress zone", TierNeedsAttention.Interpretation())
	assert.Equal(t, "poor", TierNeedsAttention.ColorKey())
	assert.Equal(t, "Needs Attention", TierNeedsAttention.String())
}

func TestComputeHealthScores_Bounds(t *testing.T) {
	inputs := []HealthInputs{
		{},
		DefaultHealthInputs(),
		excellentInputs(),
		{MonthlyIncome: 1, MonthlyExpenses: 1e9, EmergencyFund: -5, MonthlyEMIs: 1e9, IncomeStability: 1},
		{MonthlyIncome: -1000, MonthlyExpenses: -10, MonthlyEMIs: -10, IncomeStability: 5},
	}
	for _, in := range inputs {
		scores := ComputeHealthScores(in)
		for _, f := range scores.Factors()[1:] {
			assert.GreaterOrEqual(t, f.Score, 1, f.Key)
			assert.LessOrEqual(t, f.Score, MaxFactorScore, f.Key)
		}
		assert.LessOrEqual(t, scores.Total(), MaxTotalScore)
	}
}

func TestComputeHealthScores_Idempotent(t *testing.T) {
	in := excellentInputs()
	assert.Equal(t, ComputeHealthScores(in), ComputeHealthScores(in))
}

func TestComputeHealthScores_IncomeSourceIgnored(t *testing.T) {
	base := excellentInputs()
	for _, src := range []IncomeSource{IncomeSalaried, IncomeBusiness, IncomeMixed} {
		in := base
		in.IncomeSource = src
		assert.Equal(t, ComputeHealthScores(base), ComputeHealthScores(in))
	}
}

func TestDefaultHealthInputs(t *testing.T) {
	scores := ComputeHealthScores(DefaultHealthInputs())

	assert.Equal(t, HealthScores{
		IncomeStability:   DefaultIncomeStability,
		ExpenseManagement: 1,
		EmergencyFund:     1,
		DebtManagement:    5,
		Investments:       1,
		Insurance:         1,
	}, scores)
	assert.Equal(t, 12, scores.Total())
	assert.Equal(t, TierNeedsAttention, scores.Tier())
}

func TestEvaluateHealth(t *testing.T) {
	rep := EvaluateHealth(excellentInputs())

	require.Len(t, rep.Factors, 6)
	assert.Equal(t, "Income Stability", rep.Factors[0].Label)
	assert.Equal(t, 29, rep.Total)
	assert.Equal(t, MaxTotalScore, rep.MaxTotal)
	assert.Equal(t, "excellent", rep.ColorKey)
	assert.InDelta(t, 40000, rep.Ratios.MonthlySavings, 1e-9)
	assert.InDelta(t, 40, rep.Ratios.SavingsRatio, 1e-9)
	assert.InDelta(t, 4, rep.Ratios.EmergencyCover, 1e-9)
	assert.InDelta(t, 15, rep.Ratios.DebtRatio, 1e-9)
}

func TestComputeHealthRatios_OverflowIsCapped(t *testing.T) {
	in := HealthInputs{
		MonthlyIncome:   1e-300,
		MonthlyExpenses: 1e-300,
		EmergencyFund:   1e308,
		MonthlyEMIs:     1e308,
		IncomeStability: 3,
	}

	ratios := ComputeHealthRatios(in)
	for name, v := range map[string]float64{
		"savings":   ratios.SavingsRatio,
		"debt":      ratios.DebtRatio,
		"emergency": ratios.EmergencyCover,
	} {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), name)
	}
	assert.Equal(t, math.MaxFloat64, ratios.DebtRatio)

	scores := ComputeHealthScores(in)
	assert.Equal(t, 1, scores.DebtManagement)
	assert.Equal(t, 5, scores.EmergencyFund)
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, finite(math.NaN()))
	assert.Equal(t, math.MaxFloat64, finite(math.Inf(1)))
	assert.Equal(t, -math.MaxFloat64, finite(math.Inf(-1)))
	assert.Equal(t, 42.5, finite(42.5))
}
