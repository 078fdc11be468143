package main

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Digit grouping styles
const (
	GroupingIndian  = "indian"  // 12,34,567
	GroupingWestern = "western" // 1,234,567
)

// Currency controls how money is written in every output
type Currency struct {
	Symbol    string `yaml:"symbol" json:"symbol"`
	Code      string `yaml:"code" json:"code"`
	PDFSymbol string `yaml:"pdf_symbol" json:"pdf_symbol"` // core PDF fonts have no glyph for ₹
	Grouping  string `yaml:"grouping" json:"grouping"`
}

// DefaultCurrency is Indian rupees with lakh/crore grouping
func DefaultCurrency() Currency {
	return Currency{Symbol: "₹", Code: "INR", PDFSymbol: "Rs.", Grouping: GroupingIndian}
}

// Format writes an amount with the currency symbol, rounded to at most places
// decimals with trailing zeros dropped
func (c Currency) Format(amount float64, places int32) string {
	return c.Symbol + c.FormatPlain(amount, places)
}

// ForPDF swaps the symbol for one the core PDF fonts can draw
func (c Currency) ForPDF() Currency {
	sym := c.PDFSymbol
	if sym == "" {
		sym = c.Code
	}
	c.Symbol = sym + " "
	return c
}

// FormatPDF is Format with the PDF-safe symbol
func (c Currency) FormatPDF(amount float64, places int32) string {
	return c.ForPDF().Format(amount, places)
}

// FormatPlain writes a grouped amount with no symbol. Non-finite amounts
// are written as "n/a".
func (c Currency) FormatPlain(amount float64, places int32) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	s := decimal.NewFromFloat(amount).Round(places).String()

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	grouped := groupDigits(intPart, c.Grouping == GroupingIndian)
	if neg && (grouped != "0" || frac != "") {
		grouped = "-" + grouped
	}
	return grouped + frac
}

// groupDigits inserts thousands separators. Indian grouping keeps the last
// three digits together and then groups in pairs.
func groupDigits(digits string, indian bool) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	size := 3
	if indian {
		size = 2
	}

	var parts []string
	for len(head) > size {
		parts = append([]string{head[len(head)-size:]}, parts...)
		head = head[:len(head)-size]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}
