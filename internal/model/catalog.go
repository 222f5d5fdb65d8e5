package model

import "github.com/shopspring/decimal"

// CatalogEntry is one Sextan reference product after decoding of the
// composite "category | name | container | shelf life" label.
type CatalogEntry struct {
	IDSextan    string
	Category    string // entree/plat/dessert, or a raw numeric code
	ProductName string
	UnitCost    decimal.NullDecimal
	Family      string // empty when the catalog leaves it blank
	Container   string
	ShelfLife   string // "j+3" style marker
}
