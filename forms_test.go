package main

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"75000", 75000},
		{" 75000 ", 75000},
		{"1,20,000", 120000},
		{"₹1,20,000", 120000},
		{"Rs. 5000", 5000},
		{"INR 2500", 2500},
		{"$100", 100},
		{"1.5L", 150000},
		{"2 lakh", 200000},
		{"2cr", 20000000},
		{"1.2 crore", 12000000},
		{"100k", 100000},
		{"1m", 1000000},
		{"1_000", 1000},
		{"-500", 0},
		{"-1.5L", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e400", 0},
		{"1e308cr", 0},
		{"1e305 crore", 0},
		{"1e308", 1e308},
		{"12abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestParseYesNo(t *testing.T) {
	for _, yes := range []string{"Yes", "yes", "Y", "true", "on", "1", " YES "} {
		assert.True(t, ParseYesNo(yes), yes)
	}
	for _, no := range []string{"No", "", "false", "0", "maybe", "off"} {
		assert.False(t, ParseYesNo(no), no)
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"3", 3},
		{"5", 5},
		{"4.0", 4},
		{"4.7", 4},
		{"0", 1},
		{"-2", 1},
		{"6", 5},
		{"9", 5},
		{"99999999999999999999", 5},
		{"-99999999999999999999", 1},
		{"1e400", 5},
		{"-1e400", 1},
		{"", DefaultIncomeStability},
		{"high", DefaultIncomeStability},
		{"NaN", DefaultIncomeStability},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRating(tt.input), "input=%q", tt.input)
	}
}

func TestParseIncomeSource(t *testing.T) {
	assert.Equal(t, IncomeBusiness, ParseIncomeSource("business"))
	assert.Equal(t, IncomeMixed, ParseIncomeSource("Mixed"))
	assert.Equal(t, IncomeSalaried, ParseIncomeSource("Salaried"))
	assert.Equal(t, IncomeSalaried, ParseIncomeSource("freelance"))
}

func TestHealthForm_UnmarshalJSONScalars(t *testing.T) {
	body := `{
		"monthlyIncome": 100000,
		"incomeSource": "Salaried",
		"incomeStability": 5,
		"monthlyExpenses": "60,000",
		"emergencyFund": "2.4L",
		"monthlyEMIs": null,
		"investments": {"fd": true, "mf": "yes", "shares": false, "pf": 1},
		"regularInvestments": "Yes",
		"healthInsurance": "Yes",
		"lifeInsurance": "Yes"
	}`

	var form HealthForm
	require.NoError(t, json.Unmarshal([]byte(body), &form))

	assert.Equal(t, FormValue("100000"), form.MonthlyIncome)
	assert.Equal(t, FormValue(""), form.MonthlyEMIs)
	assert.Equal(t, FormValue("true"), form.Investments.FD)

	in := form.Inputs()
	assert.Equal(t, 100000.0, in.MonthlyIncome)
	assert.Equal(t, 5, in.IncomeStability)
	assert.Equal(t, 60000.0, in.MonthlyExpenses)
	assert.Equal(t, 240000.0, in.EmergencyFund)
	assert.Zero(t, in.MonthlyEMIs)
	assert.Equal(t, InvestmentFlags{FixedDeposit: true, MutualFund: true, ProvidentFund: true}, in.Investments)
	assert.True(t, in.RegularInvestments)

	assert.Equal(t, 29, ComputeHealthScores(in).Total())
}

func TestDefaultHealthForm(t *testing.T) {
	assert.Equal(t, DefaultHealthInputs(), DefaultHealthForm().Inputs())
}

func TestPortfolioForm(t *testing.T) {
	var form PortfolioForm
	form.Set(AssetEquity, "5L")
	form.Set(AssetDebt, "2,00,000")
	form.Set(AssetGold, "50k")
	form.Set(AssetREIT, "50000")
	form.Set(AssetCash, "garbage")

	assert.Equal(t, PortfolioInputs{Equity: 500000, Debt: 200000, Gold: 50000, REIT: 50000}, form.Inputs())
	assert.Equal(t, FormValue("50k"), *form.Field(AssetGold))
}

func TestHealthForm_OverflowingAmountsStayRenderable(t *testing.T) {
	form := DefaultHealthForm()
	form.MonthlyIncome = "1e308cr"
	form.MonthlyEMIs = "1e308"
	form.MonthlyExpenses = "-20000"

	in := form.Inputs()
	assert.Zero(t, in.MonthlyIncome)
	assert.Zero(t, in.MonthlyExpenses)
	assert.Equal(t, 1e308, in.MonthlyEMIs)

	var buf bytes.Buffer
	assert.NotPanics(t, func() { PrintHealthReport(&buf, EvaluateHealth(in), DefaultCurrency()) })
}

func TestPortfolioForm_NegativeAmountsIgnored(t *testing.T) {
	form := PortfolioForm{Equity: "100", Debt: "-50"}
	outcome := ComputeAllocation(form.Inputs())

	assert.InDelta(t, 100, outcome.TotalPortfolio, 1e-9)
	assert.InDelta(t, 100, outcome.ActualAllocations[AssetEquity], 1e-9)
	assert.Zero(t, outcome.ActualAllocations[AssetDebt])
}
