package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger"
	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/fekuna/omnipos-sales-ledger/internal/sheet"
)

type failingExporter struct{}

func (failingExporter) Format() string { return "broken" }

func (failingExporter) Export(ctx context.Context, dir string, t *dto.Tables) ([]string, error) {
	return nil, errors.New("disk full")
}

func price(v float64) *float64 { return &v }

func tables() *dto.Tables {
	order := dto.OrderRecord{
		IDCorner: "003", NomCorner: "rochplaza", IDCommande: "42", Date: "02/03/2024", Heure: "13:00",
		Service: "midi", TypePaiement: "CB", Quantite: 2, Produit: "cookie",
		HTUnitaire: price(1.5), TTCUnitaire: price(1.65), HTTotal: price(3), TTCTotal: price(3.3), MontantRegle: price(3.3),
	}
	return &dto.Tables{
		Corner: model.Corner{ID: "003", Name: "rochplaza"},
		Orders: []dto.OrderRecord{order},
		Merged: []dto.MergedRecord{{OrderRecord: order, ProduitSextan: "cookie", Famille: "dessert cookie", Categorie: "dessert"}},
	}
}

func TestNewExporters(t *testing.T) {
	exporters, err := NewExporters([]string{"csv", " SQLite ", "xlsx", "csv", ""})
	if err != nil {
		t.Fatalf("exporters: %v", err)
	}
	var formats []string
	for _, e := range exporters {
		formats = append(formats, e.Format())
	}
	if len(formats) != 3 || formats[0] != "xlsx" || formats[1] != "csv" || formats[2] != "sqlite" {
		t.Fatalf("unexpected formats %v", formats)
	}

	if _, err := NewExporters([]string{"parquet"}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	exporters, _ := NewExporters([]string{"csv"})

	files, err := NewStagedRepository(dir, exporters, logger.NewNop()).Save(context.Background(), tables())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	want := []string{
		filepath.Join(dir, "izydesk_auto_rochplaza.xlsx"),
		filepath.Join(dir, "merged_data_auto_rochplaza.xlsx"),
		filepath.Join(dir, "izydesk_auto_rochplaza.csv"),
		filepath.Join(dir, "merged_data_auto_rochplaza.csv"),
	}
	if len(files) != len(want) {
		t.Fatalf("unexpected files %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("file %d = %s, want %s", i, files[i], want[i])
		}
	}

	tbl, err := sheet.Read(files[1])
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Get(tbl.Rows[0], "famille") != "dessert cookie" || tbl.Get(tbl.Rows[0], "id_corner") != "003" {
		t.Fatalf("unexpected merged table %+v", tbl)
	}
}

func TestSaveIsAllOrNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	exporters := []ledger.Exporter{NewXLSXExporter(), failingExporter{}}

	_, err := NewStagedRepository(dir, exporters, logger.NewNop()).Save(context.Background(), tables())
	if err == nil {
		t.Fatalf("expected export error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("no file should be published, found %v", entries)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(MergedTable, model.Corner{ID: "002", Name: "nimes"}, "xlsx"); got != "merged_data_auto_nimes.xlsx" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := FileName(OrdersTable, model.Corner{}, "csv"); got != "izydesk_auto_.csv" {
		t.Fatalf("unexpected name %q", got)
	}
}
