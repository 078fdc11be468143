package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

var csvHeader = []string{"asset", "actual_pct", "ideal_pct", "difference_pct", "status", "deviation_amount", "action"}

// WriteAllocationCSV writes one row per asset class
func WriteAllocationCSV(out io.Writer, outcome AllocationOutcome) error {
	if !outcome.Analyzable() {
		return ErrInsufficientData
	}

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range outcome.Results {
		action := "maintain"
		switch r.Status {
		case StatusDeficit:
			action = string(ActionIncrease)
		case StatusSurplus:
			action = string(ActionReduce)
		}
		row := []string{
			string(r.Asset),
			round2(r.ActualPercent),
			strconv.FormatFloat(r.IdealPercent, 'f', -1, 64),
			round2(r.DifferencePercent),
			string(r.Status),
			round2(r.DeviationAmount),
			action,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// round2 writes v rounded to two decimals without trailing zeros
func round2(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
