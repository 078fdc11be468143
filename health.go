package main

import "math"

// DefaultIncomeStability is the stability rating a fresh form starts with
const DefaultIncomeStability = 3

// DefaultHealthInputs returns the empty health form used on start and reset
func DefaultHealthInputs() HealthInputs {
	return HealthInputs{
		IncomeSource:    IncomeSalaried,
		IncomeStability: DefaultIncomeStability,
	}
}

// ComputeHealthScores scores a health snapshot on six independent factors.
// It never fails: callers coerce bad numeric input to zero before calling.
func ComputeHealthScores(in HealthInputs) HealthScores {
	ratios := ComputeHealthRatios(in)
	return HealthScores{
		IncomeStability:   in.IncomeStability,
		ExpenseManagement: scoreSavingsRatio(ratios.SavingsRatio),
		EmergencyFund:     scoreEmergencyCover(ratios.EmergencyCover),
		DebtManagement:    scoreDebtRatio(ratios.DebtRatio),
		Investments:       scoreInvestments(in.Investments, in.RegularInvestments),
		Insurance:         scoreInsurance(in.HealthInsurance, in.LifeInsurance),
	}
}

// ComputeHealthRatios derives the savings, emergency-cover and debt figures
func ComputeHealthRatios(in HealthInputs) HealthRatios {
	r := HealthRatios{MonthlySavings: finite(in.MonthlyIncome - in.MonthlyExpenses)}
	if in.MonthlyIncome > 0 {
		r.SavingsRatio = finite(r.MonthlySavings / in.MonthlyIncome * 100)
		r.DebtRatio = finite(in.MonthlyEMIs / in.MonthlyIncome * 100)
	}
	if in.MonthlyExpenses > 0 {
		r.EmergencyCover = finite(in.EmergencyFund / in.MonthlyExpenses)
	}
	return r
}

// finite caps an overflowed ratio at the largest float. NaN becomes 0.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// EvaluateHealth scores the inputs and bundles the result for rendering
func EvaluateHealth(in HealthInputs) HealthReport {
	scores := ComputeHealthScores(in)
	tier := scores.Tier()
	return HealthReport{
		Inputs:         in,
		Scores:         scores,
		Factors:        scores.Factors(),
		Total:          scores.Total(),
		MaxTotal:       MaxTotalScore,
		Tier:           tier,
		Interpretation: tier.Interpretation(),
		ColorKey:       tier.ColorKey(),
		Ratios:         ComputeHealthRatios(in),
	}
}

// ClassifyHealth maps a total score onto its tier
func ClassifyHealth(total int) HealthTier {
	switch {
	case total >= 26:
		return TierExcellent
	case total >= 21:
		return TierGood
	case total >= 15:
		return TierAverage
	default:
		return TierNeedsAttention
	}
}

// scoreSavingsRatio rates (income - expenses) / income as a percentage
func scoreSavingsRatio(ratio float64) int {
	switch {
	case ratio >= 30:
		return 5
	case ratio >= 20:
		return 4
	case ratio >= 10:
		return 3
	case ratio >= 1:
		return 2
	default:
		return 1
	}
}

// scoreEmergencyCover rates the months of expenses the emergency fund covers
func scoreEmergencyCover(months float64) int {
	switch {
	case months >= 6:
		return 5
	case months >= 4:
		return 4
	case months >= 3:
		return 3
	case months >= 1:
		return 2
	default:
		return 1
	}
}

// scoreDebtRatio rates EMIs as a percentage of income; lower is better
func scoreDebtRatio(ratio float64) int {
	switch {
	case ratio <= 20:
		return 5
	case ratio <= 30:
		return 4
	case ratio <= 40:
		return 3
	case ratio <= 50:
		return 2
	default:
		return 1
	}
}

// scoreInvestments rates diversification and investing discipline.
//
// The fixed-deposit branch can never fire: a held FD already counts towards
// active, so the active >= 1 case takes it first. It stays so the branch order
// matches the published scoring rules.
func scoreInvestments(flags InvestmentFlags, regular bool) int {
	active := flags.ActiveCount()
	switch {
	case active >= 3 && regular:
		return 5
	case active >= 2 && regular:
		return 4
	case active >= 1:
		return 3
	case flags.FixedDeposit:
		return 2
	default:
		return 1
	}
}

// scoreInsurance rates health and life cover
func scoreInsurance(health, life bool) int {
	switch {
	case health && life:
		return 5
	case health || life:
		return 3
	default:
		return 1
	}
}
