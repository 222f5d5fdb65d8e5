package model

import "github.com/shopspring/decimal"

// Corner is a physical point of sale.
type Corner struct {
	ID   string
	Name string
}

// OrderRow is one order of the Izydesk export.
type OrderRow struct {
	Corner        Corner
	OrderID       string
	Date          string
	Time          string
	Service       string
	Products      string // "{qty}x {name}" lines, newline separated
	HT            decimal.Decimal
	TTC           decimal.Decimal
	Payments      string // "{method}:{amount}€"
	PaymentMethod string
	AmountPaid    decimal.NullDecimal
}

// ExplodedLine is one bundled product of an order. HT and TTC on the
// embedded OrderRow are still the order totals.
type ExplodedLine struct {
	OrderRow
	Quantity    int
	ProductName string // trimmed, lowercase
}

// UnitPrice is derived from single-item orders only.
type UnitPrice struct {
	ProductName string
	UnitHT      decimal.Decimal
	UnitTTC     decimal.Decimal
}

// OrderLine is an exploded line priced at unit level. The amounts are null
// when no single-item order ever sold the product.
type OrderLine struct {
	ExplodedLine
	UnitHT    decimal.NullDecimal
	UnitTTC   decimal.NullDecimal
	TotalHT   decimal.NullDecimal
	TotalTTC  decimal.NullDecimal
	TotalPaid decimal.NullDecimal
}

// Priced reports whether a unit price was resolved for the line.
func (l OrderLine) Priced() bool { return l.UnitHT.Valid }
