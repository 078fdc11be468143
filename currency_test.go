package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency_FormatPlain(t *testing.T) {
	indian := DefaultCurrency()
	western := Currency{Symbol: "$", Code: "USD", Grouping: GroupingWestern}

	tests := []struct {
		name   string
		c      Currency
		amount float64
		places int32
		want   string
	}{
		{"indian zero", indian, 0, 2, "0"},
		{"indian hundreds", indian, 999, 2, "999"},
		{"indian thousand", indian, 1000, 2, "1,000"},
		{"indian lakh", indian, 150000, 2, "1,50,000"},
		{"indian crore", indian, 12345678, 0, "1,23,45,678"},
		{"indian decimals", indian, 1234.567, 2, "1,234.57"},
		{"indian trailing zeros dropped", indian, 1234.5, 2, "1,234.5"},
		{"indian negative", indian, -250000, 0, "-2,50,000"},
		{"indian tiny negative rounds to zero", indian, -0.001, 2, "0"},
		{"western million", western, 1234567, 0, "1,234,567"},
		{"western round", western, 999.999, 2, "1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.FormatPlain(tt.amount, tt.places))
		})
	}
}

func TestCurrency_Format(t *testing.T) {
	c := DefaultCurrency()

	assert.Equal(t, "₹1,00,000", c.Format(100000, 2))
	assert.Equal(t, "Rs. 1,00,000", c.FormatPDF(100000, 2))
	assert.Equal(t, "₹", c.Symbol, "ForPDF must not modify the receiver")
}

func TestCurrency_FormatPDFFallsBackToCode(t *testing.T) {
	c := Currency{Symbol: "€", Code: "EUR", Grouping: GroupingWestern}
	assert.Equal(t, "EUR 1,000", c.FormatPDF(1000, 0))
}

func TestCurrency_FormatNonFinite(t *testing.T) {
	c := DefaultCurrency()
	assert.Equal(t, "n/a", c.FormatPlain(math.Inf(1), 2))
	assert.Equal(t, "₹n/a", c.Format(math.NaN(), 2))
}
