package dto

type ClassifyStats struct {
	Lines       int
	FromCatalog int // lines whose family came from the catalog or a previous run
	Overridden  int // anti-gaspi overrides
	Fallback    int // lines that reached the "autre" catch-all
	ByCategory  map[string]int
}
