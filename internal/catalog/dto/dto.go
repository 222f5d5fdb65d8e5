package dto

import "github.com/shopspring/decimal"

// RawProduct is a Sextan catalog row after column selection and cost
// parsing, before the composite label is decoded.
type RawProduct struct {
	IDSextan string
	Label    string // "category | name | container | shelf life"
	UnitCost decimal.NullDecimal
	Family   string
}

type NormalizeStats struct {
	Read     int
	Excluded int
	Entries  int
}
