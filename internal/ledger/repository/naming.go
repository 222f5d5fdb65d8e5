package repository

import (
	"fmt"

	"github.com/fekuna/omnipos-sales-ledger/internal/model"
)

const (
	OrdersTable = "izydesk"
	MergedTable = "merged_data"
	LedgerFile  = "ledger"
)

// FileName is "{table}_auto_{corner}.{ext}". An unresolved corner leaves the
// suffix empty.
func FileName(table string, c model.Corner, ext string) string {
	return fmt.Sprintf("%s_auto_%s.%s", table, c.Name, ext)
}
