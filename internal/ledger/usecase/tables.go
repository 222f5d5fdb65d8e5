package usecase

import (
	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/fekuna/omnipos-sales-ledger/internal/money"
)

// BuildTables converts priced and classified lines into export records.
func BuildTables(c model.Corner, lines []model.OrderLine, merged []model.MergedLine) *dto.Tables {
	t := &dto.Tables{
		Corner: c,
		Orders: make([]dto.OrderRecord, len(lines)),
		Merged: make([]dto.MergedRecord, len(merged)),
	}
	for i, l := range lines {
		t.Orders[i] = orderRecord(l)
	}
	for i, m := range merged {
		t.Merged[i] = dto.MergedRecord{
			OrderRecord:   orderRecord(m.OrderLine),
			IDSextan:      m.Catalog.IDSextan,
			ProduitSextan: m.ProductSextan,
			CoutUnitaire:  money.Float(m.Catalog.UnitCost),
			Famille:       m.Family,
			Categorie:     m.Category,
			Contenant:     m.Catalog.Container,
			DLC:           m.Catalog.ShelfLife,
			Trouve:        m.Matched,
		}
	}
	return t
}

func orderRecord(l model.OrderLine) dto.OrderRecord {
	return dto.OrderRecord{
		IDCorner:     l.Corner.ID,
		NomCorner:    l.Corner.Name,
		IDCommande:   l.OrderID,
		Date:         l.Date,
		Heure:        l.Time,
		Service:      l.Service,
		TypePaiement: l.PaymentMethod,
		Quantite:     l.Quantity,
		Produit:      l.ProductName,
		HTUnitaire:   money.Float(l.UnitHT),
		TTCUnitaire:  money.Float(l.UnitTTC),
		HTTotal:      money.Float(l.TotalHT),
		TTCTotal:     money.Float(l.TotalTTC),
		MontantRegle: money.Float(l.TotalPaid),
	}
}
