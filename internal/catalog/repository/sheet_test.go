package repository

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-sales-ledger/internal/catalog"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/sheet"
)

var sextanHeaders = []string{
	"", "N°", "Nom", "Marque", "Catégorie", "Coût unit.", "Famille", "Prix TTC", "Options",
}

func writeCatalog(t *testing.T, headers []string, rows [][]any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := sheet.WriteXLSX(&buf, "produits", headers, rows); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "sextan.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, sextanHeaders, [][]any{
		{0, "SX-1", "2 | Lasagnes | Barquette | j+3", "Maison", "Plat", 3.104, "Plat chaud", 9.5, ""},
		{1, "SX-2", "Pepsi Max", "Pepsico", "Boisson", "1,20 €", "", 2.5, ""},
		{2, "SX-3", "3 | Cookie", "Maison", "Dessert", "n/a", "", 2, ""},
	})

	rows, err := NewSheetRepository(logger.NewNop()).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].IDSextan != "SX-1" || rows[0].Label != "2 | Lasagnes | Barquette | j+3" || rows[0].Family != "Plat chaud" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if !rows[0].UnitCost.Valid || rows[0].UnitCost.Decimal.StringFixed(2) != "3.10" {
		t.Fatalf("unit cost should be rounded to cents, got %+v", rows[0].UnitCost)
	}
	if !rows[1].UnitCost.Valid || rows[1].UnitCost.Decimal.StringFixed(2) != "1.20" {
		t.Fatalf("formatted cost should parse, got %+v", rows[1].UnitCost)
	}
	if rows[2].UnitCost.Valid {
		t.Fatalf("unparseable cost should be null, got %+v", rows[2].UnitCost)
	}
}

func TestDecodeMissingColumn(t *testing.T) {
	tbl, err := sheet.Parse("sextan.csv", []byte("N°,Nom,Famille\nSX-1,Cookie,dessert\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Decode(tbl)
	if !errors.Is(err, catalog.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestUnused(t *testing.T) {
	tbl := &sheet.Table{}
	tbl.Headers = sheet.NormalizeHeaders([]string{"", "N°", "Nom", "Coût unit.", "Famille", "Stock", "Fournisseur"})

	got := Unused(tbl)
	if len(got) != 1 || got[0] != "fournisseur" {
		t.Fatalf("expected only fournisseur to be reported, got %v", got)
	}
}
