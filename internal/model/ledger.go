package model

// MergedLine is an order line joined with at most one catalog entry.
type MergedLine struct {
	OrderLine
	MatchName     string       // join key after fuzzy matching and volume stripping
	Catalog       CatalogEntry // zero value when Matched is false
	Matched       bool
	ProductSextan string // catalog name, backfilled with MatchName when unmatched
	Family        string
	Category      string
}

// DedupKey is the natural identity of a physical order entry.
type DedupKey struct {
	OrderID     string
	Date        string
	Time        string
	Service     string
	ProductName string
}

func (m MergedLine) Key() DedupKey {
	return DedupKey{
		OrderID:     m.OrderID,
		Date:        m.Date,
		Time:        m.Time,
		Service:     m.Service,
		ProductName: m.ProductName,
	}
}
