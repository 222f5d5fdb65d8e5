// Package corner resolves the point of sale an Izydesk export belongs to
// from the export's file name.
package corner

import (
	"path/filepath"
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/model"
)

type entry struct {
	keyword string
	corner  model.Corner
}

// table is scanned in order; the first keyword found in the file name wins,
// so a name carrying two keywords resolves to the one listed first.
var table = []entry{
	{keyword: "toulouse", corner: model.Corner{ID: "004", Name: "toulouse"}},
	{keyword: "garosud", corner: model.Corner{ID: "001", Name: "garosud"}},
	{keyword: "nimes", corner: model.Corner{ID: "002", Name: "nimes"}},
	{keyword: "rochplaza", corner: model.Corner{ID: "003", Name: "rochplaza"}},
}

// Resolve returns the corner for an order file path, or the zero Corner when
// no keyword matches.
func Resolve(path string) model.Corner {
	name := strings.ToLower(filepath.Base(path))
	for _, e := range table {
		if strings.Contains(name, e.keyword) {
			return e.corner
		}
	}
	return model.Corner{}
}

// Tag stamps c onto every row.
func Tag(rows []model.OrderRow, c model.Corner) {
	for i := range rows {
		rows[i].Corner = c
	}
}

// Known lists the configured corners in resolution order.
func Known() []model.Corner {
	out := make([]model.Corner, len(table))
	for i, e := range table {
		out[i] = e.corner
	}
	return out
}
