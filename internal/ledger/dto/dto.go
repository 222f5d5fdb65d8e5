package dto

import (
	"time"

	"github.com/fekuna/omnipos-sales-ledger/internal/model"
)

type RunInput struct {
	SextanPath  string
	IzydeskPath string
}

// Tables are the two exported tables of a run.
type Tables struct {
	Corner model.Corner
	Orders []OrderRecord
	Merged []MergedRecord
}

type MergeStats struct {
	Lines       int
	CatalogHits int // lines joined to a catalog entry
	Duplicates  int // lines dropped by deduplication
}

// Report summarises one reconciliation run.
type Report struct {
	RunID  string
	Corner model.Corner

	Orders          int
	EmptyBundles    int
	ExplodedLines   int
	DroppedSegments int

	UnitPrices       int
	UnpricedLines    int
	UnpricedProducts []string

	CatalogRead     int
	CatalogExcluded int
	CatalogEntries  int

	DistinctNames  int
	MatchedNames   int
	UnmatchedNames []string
	RenamedNames   map[string]string

	MergedLines int
	CatalogHits int
	Duplicates  int
	ByCategory  map[string]int

	Files    []string
	Duration time.Duration
}
