package main

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// IdealAllocation is the target share of each asset class, in percent.
// Each value is the midpoint of the class's range in IdealRanges (cash is fixed).
var IdealAllocation = map[AssetClass]float64{
	AssetEquity: 50,
	AssetDebt:   27.5,
	AssetGold:   7.5,
	AssetREIT:   7.5,
	AssetCash:   5,
}

// IdealRanges are the acceptable bands shown next to each ideal share
var IdealRanges = map[AssetClass]PercentRange{
	AssetEquity: {Min: 40, Max: 60},
	AssetDebt:   {Min: 20, Max: 35},
	AssetGold:   {Min: 5, Max: 10},
	AssetREIT:   {Min: 5, Max: 10},
	AssetCash:   {Min: 5, Max: 5},
}

// BalancedTolerance is how many percentage points an asset class may drift from
// its ideal share and still count as balanced
const BalancedTolerance = 2.0

// Equity thresholds for the risk profile
const (
	aggressiveEquityPercent = 55.0
	moderateEquityPercent   = 40.0
)

// AssetInfo is the display metadata for an asset class
type AssetInfo struct {
	Label      string `json:"label"`
	ShortLabel string `json:"short_label"`
	Color      string `json:"color"`
	Purpose    string `json:"purpose"`
}

// AssetCatalog describes every asset class for the renderers
var AssetCatalog = map[AssetClass]AssetInfo{
	AssetEquity: {Label: "Equities (Stocks/Mutual Funds)", ShortLabel: "Equities", Color: "#6366f1", Purpose: "Growth & beating inflation"},
	AssetDebt:   {Label: "Debt (Bonds/FD/PF)", ShortLabel: "Debt", Color: "#ec4899", Purpose: "Stability & income"},
	AssetGold:   {Label: "Gold/Precious Metals", ShortLabel: "Gold/Precious Metals", Color: "#f59e0b", Purpose: "Hedge against inflation & crisis"},
	AssetREIT:   {Label: "Real Estate/REITs", ShortLabel: "Real Estate/REITs", Color: "#14b8a6", Purpose: "Long-term wealth & income"},
	AssetCash:   {Label: "Cash & Cash Equivalents", ShortLabel: "Cash & Cash Equivalents", Color: "#8b5cf6", Purpose: "Liquidity for emergencies"},
}

// ComputeAllocation compares a portfolio against IdealAllocation.
// A zero or overflowed total yields all-zero percentages; see
// AllocationOutcome.Analyzable.
func ComputeAllocation(in PortfolioInputs) AllocationOutcome {
	amounts := in.Amounts()
	total := floats.Sum(amounts)

	actual := make(map[AssetClass]float64, len(AssetClasses))
	analyzable := total > 0 && !math.IsInf(total, 0)
	for i, asset := range AssetClasses {
		if analyzable {
			actual[asset] = amounts[i] / total * 100
		} else {
			actual[asset] = 0
		}
	}

	results := make([]AllocationResult, 0, len(AssetClasses))
	for _, asset := range AssetClasses {
		ideal := IdealAllocation[asset]
		diff := actual[asset] - ideal
		var deviation float64
		if analyzable {
			deviation = total / 100 * diff
		}
		results = append(results, AllocationResult{
			Asset:             asset,
			IdealPercent:      ideal,
			ActualPercent:     actual[asset],
			DifferencePercent: diff,
			Status:            ClassifyDeviation(diff),
			DeviationAmount:   deviation,
			Range:             IdealRanges[asset],
		})
	}

	return AllocationOutcome{
		TotalPortfolio:    total,
		ActualAllocations: actual,
		RiskProfile:       ClassifyRisk(actual[AssetEquity]),
		Results:           results,
	}
}

// ClassifyRisk derives the risk profile from the equity share alone.
// Debt, gold, REIT and cash are deliberately not considered.
func ClassifyRisk(equityPercent float64) RiskProfile {
	switch {
	case equityPercent >= aggressiveEquityPercent:
		return RiskAggressive
	case equityPercent >= moderateEquityPercent:
		return RiskModerate
	default:
		return RiskConservative
	}
}

// ClassifyDeviation turns actual - ideal into a status. Exactly ±2 is balanced.
func ClassifyDeviation(diff float64) AllocationStatus {
	switch {
	case diff > BalancedTolerance:
		return StatusSurplus
	case diff < -BalancedTolerance:
		return StatusDeficit
	default:
		return StatusBalanced
	}
}

// Recommendations lists a rebalancing step for each class that is out of band
func (o AllocationOutcome) Recommendations() []Recommendation {
	var recs []Recommendation
	for _, r := range o.Results {
		var action RecommendationAction
		switch r.Status {
		case StatusDeficit:
			action = ActionIncrease
		case StatusSurplus:
			action = ActionReduce
		default:
			continue
		}
		recs = append(recs, Recommendation{
			Asset:   r.Asset,
			Action:  action,
			Amount:  math.Abs(r.DeviationAmount),
			Percent: math.Abs(r.DifferencePercent),
		})
	}
	return recs
}

// Text renders the recommendation as a sentence
func (r Recommendation) Text(c Currency) string {
	verb := "increasing"
	if r.Action == ActionReduce {
		verb = "reducing"
	}
	return fmt.Sprintf("Consider %s %s by %s (%.1f%%)",
		verb, AssetCatalog[r.Asset].ShortLabel, c.Format(r.Amount, 2), r.Percent)
}

// StatusNote is the one-line verdict shown on each asset card
func (r AllocationResult) StatusNote(c Currency) string {
	switch r.Status {
	case StatusSurplus:
		return "Over-invested by " + c.Format(math.Abs(r.DeviationAmount), 2)
	case StatusDeficit:
		return "Under-invested by " + c.Format(math.Abs(r.DeviationAmount), 2)
	default:
		return "Well balanced allocation"
	}
}

// ActionText is the ACTION REQUIRED cell of the report table
func (r AllocationResult) ActionText(c Currency) string {
	if r.Status == StatusBalanced {
		return "Maintain"
	}
	return c.FormatPlain(math.Abs(r.DeviationAmount), 0)
}

// RiskSummary is the sentence explaining the risk classification
func (o AllocationOutcome) RiskSummary() string {
	return fmt.Sprintf("Based on your equity allocation of %.1f%%, you are classified as a %s investor.",
		o.ActualAllocations[AssetEquity], strings.ToLower(o.RiskProfile.Label()))
}
