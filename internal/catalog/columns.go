package catalog

// Sextan source columns, after lowercasing.
const (
	ColID       = "n°"
	ColLabel    = "nom"
	ColUnitCost = "coût unit."
	ColFamily   = "famille"
)

var RequiredColumns = []string{ColID, ColLabel, ColUnitCost, ColFamily}

// DroppedColumns are Sextan columns the ledger never uses.
var DroppedColumns = []string{
	"unnamed: 0", "marque", "type", "catégorie", "prod. par", "nb portion",
	"nb sous-prod.", "stock", "prix ht", "prix ttc", "options",
}

// ExclusionKeywords mark internal, non-sellable SKUs.
var ExclusionKeywords = []string{"solanid", "arena"}

// ShelfLifeMarker identifies the "j+N" shelf-life segment of a label.
const ShelfLifeMarker = "j+"
