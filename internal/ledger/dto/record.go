package dto

// OrderRecord is one row of the izydesk_auto table.
type OrderRecord struct {
	IDCorner     string   `csv:"id_corner" db:"id_corner"`
	NomCorner    string   `csv:"nom corner" db:"nom_corner"`
	IDCommande   string   `csv:"id_commande" db:"id_commande"`
	Date         string   `csv:"date" db:"date"`
	Heure        string   `csv:"heure" db:"heure"`
	Service      string   `csv:"service" db:"service"`
	TypePaiement string   `csv:"type paiement" db:"type_paiement"`
	Quantite     int      `csv:"quantité" db:"quantite"`
	Produit      string   `csv:"produit" db:"produit"`
	HTUnitaire   *float64 `csv:"ht_unitaire" db:"ht_unitaire"`
	TTCUnitaire  *float64 `csv:"ttc_unitaire" db:"ttc_unitaire"`
	HTTotal      *float64 `csv:"ht_total" db:"ht_total"`
	TTCTotal     *float64 `csv:"ttc_total" db:"ttc_total"`
	MontantRegle *float64 `csv:"montant réglé total" db:"montant_regle_total"`
}

// MergedRecord is one row of the merged_data_auto table.
type MergedRecord struct {
	OrderRecord
	IDSextan      string   `csv:"id_sextan" db:"id_sextan"`
	ProduitSextan string   `csv:"produit_sextan" db:"produit_sextan"`
	CoutUnitaire  *float64 `csv:"cout_unitaire" db:"cout_unitaire"`
	Famille       string   `csv:"famille" db:"famille"`
	Categorie     string   `csv:"categorie" db:"categorie"`
	Contenant     string   `csv:"contenant" db:"contenant"`
	DLC           string   `csv:"dlc" db:"dlc"`
	Trouve        bool     `csv:"produit_sextan_trouve" db:"produit_sextan_trouve"`
}

// OrderHeaders and MergedHeaders are the exported column names, in order.
var OrderHeaders = []string{
	"id_corner", "nom corner", "id_commande", "date", "heure", "service", "type paiement",
	"quantité", "produit", "ht_unitaire", "ttc_unitaire", "ht_total", "ttc_total", "montant réglé total",
}

var MergedHeaders = append(append([]string{}, OrderHeaders...),
	"id_sextan", "produit_sextan", "cout_unitaire", "famille", "categorie", "contenant", "dlc", "produit_sextan_trouve",
)

func (r OrderRecord) Values() []any {
	return []any{
		r.IDCorner, r.NomCorner, r.IDCommande, r.Date, r.Heure, r.Service, r.TypePaiement,
		r.Quantite, r.Produit, r.HTUnitaire, r.TTCUnitaire, r.HTTotal, r.TTCTotal, r.MontantRegle,
	}
}

func (r MergedRecord) Values() []any {
	return append(r.OrderRecord.Values(),
		r.IDSextan, r.ProduitSextan, r.CoutUnitaire, r.Famille, r.Categorie, r.Contenant, r.DLC, r.Trouve,
	)
}
