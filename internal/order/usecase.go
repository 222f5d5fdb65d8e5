package order

import (
	"context"

	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/fekuna/omnipos-sales-ledger/internal/order/dto"
)

type UseCase interface {
	// LoadOrders loads an export and stamps the corner resolved from its file name.
	LoadOrders(ctx context.Context, path string) ([]model.OrderRow, model.Corner, error)

	Explode(rows []model.OrderRow) ([]model.ExplodedLine, dto.ExplodeStats)
	ResolveUnitPrices(rows []model.OrderRow) []model.UnitPrice
	Price(lines []model.ExplodedLine, prices []model.UnitPrice) ([]model.OrderLine, dto.PriceStats)
}
