package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/sheet"
)

const sheetName = "Sheet1"

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Format() string { return "xlsx" }

func (e *XLSXExporter) Export(ctx context.Context, dir string, t *dto.Tables) ([]string, error) {
	orders := make([][]any, len(t.Orders))
	for i, r := range t.Orders {
		orders[i] = r.Values()
	}
	merged := make([][]any, len(t.Merged))
	for i, r := range t.Merged {
		merged[i] = r.Values()
	}

	ordersPath := filepath.Join(dir, FileName(OrdersTable, t.Corner, "xlsx"))
	if err := writeWorkbook(ordersPath, dto.OrderHeaders, orders); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mergedPath := filepath.Join(dir, FileName(MergedTable, t.Corner, "xlsx"))
	if err := writeWorkbook(mergedPath, dto.MergedHeaders, merged); err != nil {
		return nil, err
	}
	return []string{ordersPath, mergedPath}, nil
}

func writeWorkbook(path string, headers []string, rows [][]any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sheet.WriteXLSX(f, sheetName, headers, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
