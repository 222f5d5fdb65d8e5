package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/fekuna/omnipos-sales-ledger/internal/money"
	"github.com/fekuna/omnipos-sales-ledger/internal/order"
	"github.com/fekuna/omnipos-sales-ledger/internal/sheet"
	"github.com/shopspring/decimal"
)

type SheetRepository struct{}

func NewSheetRepository() *SheetRepository {
	return &SheetRepository{}
}

func (r *SheetRepository) Load(ctx context.Context, path string) ([]model.OrderRow, error) {
	tbl, err := sheet.Read(path)
	if err != nil {
		return nil, err
	}
	return Decode(tbl)
}

// Decode maps a normalized Izydesk table onto order rows.
func Decode(tbl *sheet.Table) ([]model.OrderRow, error) {
	if tbl.Col(order.ColOrderID) < 0 {
		for i, h := range tbl.Headers {
			if order.OrderIDHeader.MatchString(h) {
				tbl.Rename(i, order.ColOrderID)
				break
			}
		}
	}

	if missing := tbl.Missing(order.RequiredColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", order.ErrMissingColumn, strings.Join(missing, ", "))
	}

	rows := make([]model.OrderRow, 0, len(tbl.Rows))
	for i, raw := range tbl.Rows {
		line := i + 2 // 1-based, after the header row

		// summary lines at the bottom of the export carry neither id nor products
		if tbl.Get(raw, order.ColOrderID) == "" && tbl.Get(raw, order.ColProducts) == "" {
			continue
		}

		ht, err := amount(tbl, raw, order.ColHT, line)
		if err != nil {
			return nil, err
		}
		ttc, err := amount(tbl, raw, order.ColTTC, line)
		if err != nil {
			return nil, err
		}

		payments := tbl.Get(raw, order.ColPayments)
		method, paid := splitPayment(payments)

		rows = append(rows, model.OrderRow{
			OrderID:       tbl.Get(raw, order.ColOrderID),
			Date:          tbl.Get(raw, order.ColDate),
			Time:          tbl.Get(raw, order.ColTime),
			Service:       tbl.Get(raw, order.ColService),
			Products:      tbl.Raw(raw, order.ColProducts),
			HT:            ht,
			TTC:           ttc,
			Payments:      payments,
			PaymentMethod: method,
			AmountPaid:    paid,
		})
	}
	return rows, nil
}

func amount(tbl *sheet.Table, raw []string, col string, line int) (decimal.Decimal, error) {
	v := tbl.Get(raw, col)
	d, err := money.Parse(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: row %d column %q value %q", order.ErrInvalidAmount, line, col, v)
	}
	return d, nil
}

// splitPayment splits "{method}:{amount}€" on its first colon. A descriptor
// without a colon keeps the whole text as method and a null amount.
func splitPayment(s string) (string, decimal.NullDecimal) {
	method, amount, ok := strings.Cut(s, ":")
	if !ok {
		return strings.TrimSpace(s), decimal.NullDecimal{}
	}
	return strings.TrimSpace(method), money.ParseNull(amount)
}
