package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE izydesk (
    id_corner TEXT, nom_corner TEXT, id_commande TEXT, date TEXT, heure TEXT, service TEXT,
    type_paiement TEXT, quantite INTEGER, produit TEXT,
    ht_unitaire REAL, ttc_unitaire REAL, ht_total REAL, ttc_total REAL, montant_regle_total REAL
)`,
	`CREATE TABLE merged_data (
    id_corner TEXT, nom_corner TEXT, id_commande TEXT, date TEXT, heure TEXT, service TEXT,
    type_paiement TEXT, quantite INTEGER, produit TEXT,
    ht_unitaire REAL, ttc_unitaire REAL, ht_total REAL, ttc_total REAL, montant_regle_total REAL,
    id_sextan TEXT, produit_sextan TEXT, cout_unitaire REAL, famille TEXT, categorie TEXT,
    contenant TEXT, dlc TEXT, produit_sextan_trouve INTEGER
)`,
	`CREATE INDEX idx_merged_data_categorie ON merged_data(categorie)`,
}

const orderColumns = `id_corner, nom_corner, id_commande, date, heure, service, type_paiement, quantite, produit,
    ht_unitaire, ttc_unitaire, ht_total, ttc_total, montant_regle_total`

const orderValues = `:id_corner, :nom_corner, :id_commande, :date, :heure, :service, :type_paiement, :quantite, :produit,
    :ht_unitaire, :ttc_unitaire, :ht_total, :ttc_total, :montant_regle_total`

var (
	insertOrder  = `INSERT INTO izydesk (` + orderColumns + `) VALUES (` + orderValues + `)`
	insertMerged = `INSERT INTO merged_data (` + orderColumns + `,
    id_sextan, produit_sextan, cout_unitaire, famille, categorie, contenant, dlc, produit_sextan_trouve)
    VALUES (` + orderValues + `,
    :id_sextan, :produit_sextan, :cout_unitaire, :famille, :categorie, :contenant, :dlc, :produit_sextan_trouve)`
)

// SQLiteExporter writes both tables into a single database file.
type SQLiteExporter struct{}

func NewSQLiteExporter() *SQLiteExporter {
	return &SQLiteExporter{}
}

func (e *SQLiteExporter) Format() string { return "sqlite" }

func (e *SQLiteExporter) Export(ctx context.Context, dir string, t *dto.Tables) ([]string, error) {
	path := filepath.Join(dir, FileName(LedgerFile, t.Corner, "sqlite"))
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, ddl := range schema {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	if err := insertAll(ctx, tx, insertOrder, t.Orders); err != nil {
		return nil, fmt.Errorf("insert izydesk: %w", err)
	}
	if err := insertAll(ctx, tx, insertMerged, t.Merged); err != nil {
		return nil, fmt.Errorf("insert merged_data: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func insertAll[T any](ctx context.Context, tx *sqlx.Tx, query string, records []T) error {
	stmt, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
