// Package format holds the pure presentation helpers: locale currency
// strings, display and export date forms, and the category badge palette.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/finbook/finbook/internal/domain"
)

// Locale selects the regional currency convention of a deployment.
type Locale string

const (
	// LocaleIndia formats amounts as INR with lakh/crore digit grouping.
	LocaleIndia Locale = "en-IN"
	// LocaleUS formats amounts as USD.
	LocaleUS Locale = "en-US"
)

// CurrencyFormatter renders decimal amounts with the deployment's currency
// symbol, locale digit grouping, and always two fraction digits.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewCurrencyFormatter builds a formatter for the given locale. Unknown
// locales fall back to the Indian convention, matching the hosted deployment.
func NewCurrencyFormatter(locale Locale) *CurrencyFormatter {
	switch locale {
	case LocaleUS:
		return &CurrencyFormatter{
			printer: message.NewPrinter(language.AmericanEnglish),
			symbol:  "$",
		}
	default:
		return &CurrencyFormatter{
			printer: message.NewPrinter(language.MustParse("en-IN")),
			symbol:  "₹",
		}
	}
}

// Format renders an amount, e.g. "₹1,234.50".
func (f *CurrencyFormatter) Format(d decimal.Decimal) string {
	v, _ := d.Float64()
	return fmt.Sprintf("%s%s", f.symbol, f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)))
}

// Symbol returns the bare currency symbol.
func (f *CurrencyFormatter) Symbol() string {
	return f.symbol
}

// DisplayDate renders a date for the table view, e.g. "Mar 15, 2024".
func DisplayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// ExportDate renders a date for spreadsheet export, e.g. "15-03-2024".
func ExportDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// ColorHint is a presentation hint for a category badge. It has no
// behavioral effect beyond styling.
type ColorHint struct {
	Background string
	Foreground string
}

var categoryColors = map[domain.Category]ColorHint{
	domain.CategoryFoodDining:     {Background: "#FFEDD5", Foreground: "#9A3412"},
	domain.CategoryTransportation: {Background: "#DBEAFE", Foreground: "#1E40AF"},
	domain.CategoryShopping:       {Background: "#F3E8FF", Foreground: "#6B21A8"},
	domain.CategoryEntertainment:  {Background: "#FCE7F3", Foreground: "#9D174D"},
	domain.CategoryBillsUtilities: {Background: "#F3F4F6", Foreground: "#1F2937"},
	domain.CategoryHealthcare:     {Background: "#FEE2E2", Foreground: "#991B1B"},
	domain.CategoryEducation:      {Background: "#E0E7FF", Foreground: "#3730A3"},
	domain.CategoryTravel:         {Background: "#CFFAFE", Foreground: "#155E75"},
	domain.CategorySalary:         {Background: "#D1FAE5", Foreground: "#065F46"},
	domain.CategoryFreelance:      {Background: "#ECFCCB", Foreground: "#3F6212"},
	domain.CategoryInvestment:     {Background: "#FEF3C7", Foreground: "#92400E"},
	domain.CategoryOther:          {Background: "#F1F5F9", Foreground: "#0F172A"},
}

var neutralColor = ColorHint{Background: "#F3F4F6", Foreground: "#1F2937"}

// CategoryColor returns the badge hint for a category, falling back to a
// neutral default for anything outside the fixed palette.
func CategoryColor(c domain.Category) ColorHint {
	if hint, ok := categoryColors[c]; ok {
		return hint
	}
	return neutralColor
}
