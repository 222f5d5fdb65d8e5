// Package money parses the locale-formatted amounts found in the POS and
// catalog exports ("12,50 €", "3.2€", "1 234,00") into decimals.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNotANumber = errors.New("money: not a number")

var cleaner = strings.NewReplacer(
	"€", "",
	"\u00a0", "",
	"\u202f", "",
	" ", "",
)

// Parse strips the currency symbol and spacing, converts a comma decimal
// separator to a period and parses the remainder.
func Parse(s string) (decimal.Decimal, error) {
	v := cleaner.Replace(strings.TrimSpace(s))
	if v == "" {
		return decimal.Zero, ErrNotANumber
	}
	v = strings.ReplaceAll(v, ",", ".")
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return d, nil
}

// ParseNull is Parse with coercion: anything unparseable becomes null.
func ParseNull(s string) decimal.NullDecimal {
	d, err := Parse(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func Round2Null(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NullDecimal{Decimal: d.Decimal.Round(2), Valid: true}
}

// Float returns the value as a float64 pointer, nil when null.
func Float(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return &f
}
