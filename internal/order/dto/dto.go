package dto

type ExplodeStats struct {
	Orders          int
	EmptyBundles    int // orders whose bundle field was blank
	Lines           int
	DroppedSegments int // non-blank segments not shaped "{qty}x {name}"
}

type PriceStats struct {
	SingleItemLines  int // lines whose order bundled exactly one product
	UnitPrices       int
	UnpricedLines    int
	UnpricedProducts []string // distinct, in first-seen order
}
