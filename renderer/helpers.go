package renderer

import (
	"text/template"

	"github.com/evdv/stockpile"
	"github.com/shopspring/decimal"
)

// helpers are the functions available inside every template.
var helpers = template.FuncMap{
	// money formats a decimal amount with the currency's symbol and
	// fraction digits.
	"money": func(v decimal.Decimal, currency string) string {
		return stockpile.M(v, currency).String()
	},
}
