// Package format renders amounts and dates the way the Brazilian frontend
// displays them.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/assistente-financeiro/painel/internal/models"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders an amount as Brazilian Reais, e.g. "R$ 1.234,56".
func Currency(amount decimal.Decimal) string {
	value, _ := amount.Float64()

	return printer.Sprintf("R$ %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Date renders an upstream date as dd/mm/yyyy. Unparseable input renders
// empty.
func Date(date string) string {
	parsed := models.ParseDate(date)
	if parsed.IsZero() {
		return ""
	}

	return parsed.Format("02/01/2006")
}
