package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/catalog"
	"github.com/fekuna/omnipos-sales-ledger/internal/catalog/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/money"
	"github.com/fekuna/omnipos-sales-ledger/internal/sheet"
	"go.uber.org/zap"
)

type SheetRepository struct {
	logger logger.ZapLogger
}

func NewSheetRepository(log logger.ZapLogger) *SheetRepository {
	return &SheetRepository{logger: log}
}

func (r *SheetRepository) Load(ctx context.Context, path string) ([]dto.RawProduct, error) {
	tbl, err := sheet.Read(path)
	if err != nil {
		return nil, err
	}
	if extra := Unused(tbl); len(extra) > 0 {
		r.logger.Debug("ignoring unknown catalog columns", zap.Strings("columns", extra))
	}
	return Decode(tbl)
}

// Decode keeps the id, label, unit cost and family columns of a Sextan
// table. Unit costs that do not parse are null.
func Decode(tbl *sheet.Table) ([]dto.RawProduct, error) {
	if missing := tbl.Missing(catalog.RequiredColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", catalog.ErrMissingColumn, strings.Join(missing, ", "))
	}

	out := make([]dto.RawProduct, 0, len(tbl.Rows))
	for _, raw := range tbl.Rows {
		out = append(out, dto.RawProduct{
			IDSextan: tbl.Get(raw, catalog.ColID),
			Label:    tbl.Get(raw, catalog.ColLabel),
			UnitCost: money.Round2Null(money.ParseNull(tbl.Get(raw, catalog.ColUnitCost))),
			Family:   tbl.Get(raw, catalog.ColFamily),
		})
	}
	return out, nil
}

// Unused lists the columns of tbl that are neither read nor on the known
// drop list.
func Unused(tbl *sheet.Table) []string {
	known := map[string]bool{}
	for _, c := range catalog.RequiredColumns {
		known[c] = true
	}
	for _, c := range catalog.DroppedColumns {
		known[c] = true
	}
	var out []string
	for _, h := range tbl.Headers {
		if !known[h] {
			out = append(out, h)
		}
	}
	return out
}
