package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/gocarina/gocsv"
)

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Format() string { return "csv" }

func (e *CSVExporter) Export(ctx context.Context, dir string, t *dto.Tables) ([]string, error) {
	ordersPath := filepath.Join(dir, FileName(OrdersTable, t.Corner, "csv"))
	if err := writeCSV(ordersPath, &t.Orders); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mergedPath := filepath.Join(dir, FileName(MergedTable, t.Corner, "csv"))
	if err := writeCSV(mergedPath, &t.Merged); err != nil {
		return nil, err
	}
	return []string{ordersPath, mergedPath}, nil
}

func writeCSV(path string, records any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(records, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
