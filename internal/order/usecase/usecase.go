package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/corner"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/fekuna/omnipos-sales-ledger/internal/money"
	"github.com/fekuna/omnipos-sales-ledger/internal/order"
	"github.com/fekuna/omnipos-sales-ledger/internal/order/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var segmentPattern = regexp.MustCompile(`^(\d+)x (.+)$`)

type orderUseCase struct {
	repo   order.Repository
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *orderUseCase) LoadOrders(ctx context.Context, path string) ([]model.OrderRow, model.Corner, error) {
	rows, err := uc.repo.Load(ctx, path)
	if err != nil {
		return nil, model.Corner{}, err
	}

	c := corner.Resolve(path)
	if c.ID == "" {
		uc.logger.Warn("no corner keyword in order file name", zap.String("path", path))
	}
	corner.Tag(rows, c)

	uc.logger.Info("loaded orders",
		zap.String("path", path),
		zap.Int("orders", len(rows)),
		zap.String("corner_id", c.ID),
		zap.String("corner", c.Name),
	)
	return rows, c, nil
}

// ParseSegment reads one "{qty}x {name}" bundle line. The name is trimmed and
// lowercased.
func ParseSegment(seg string) (int, string, bool) {
	m := segmentPattern.FindStringSubmatch(strings.TrimSpace(seg))
	if m == nil {
		return 0, "", false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return qty, strings.ToLower(strings.TrimSpace(m[2])), true
}

func (uc *orderUseCase) Explode(rows []model.OrderRow) ([]model.ExplodedLine, dto.ExplodeStats) {
	stats := dto.ExplodeStats{Orders: len(rows)}
	var lines []model.ExplodedLine

	for _, row := range rows {
		if strings.TrimSpace(row.Products) == "" {
			stats.EmptyBundles++
			continue
		}
		for _, seg := range strings.Split(row.Products, "\n") {
			qty, name, ok := ParseSegment(seg)
			if !ok {
				if strings.TrimSpace(seg) != "" {
					stats.DroppedSegments++
					uc.logger.Debug("dropped bundle segment",
						zap.String("order_id", row.OrderID),
						zap.String("segment", seg),
					)
				}
				continue
			}
			lines = append(lines, model.ExplodedLine{
				OrderRow:    row,
				Quantity:    qty,
				ProductName: name,
			})
		}
	}

	stats.Lines = len(lines)
	return lines, stats
}

// ResolveUnitPrices derives unit prices from orders whose bundle holds a
// single line. The first order seen for a product sets its price.
func (uc *orderUseCase) ResolveUnitPrices(rows []model.OrderRow) []model.UnitPrice {
	var prices []model.UnitPrice
	seen := map[string]bool{}

	for _, row := range rows {
		if row.Products == "" || strings.Count(row.Products, "\n") != 0 {
			continue
		}
		qty, name, ok := ParseSegment(row.Products)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true

		divisor := decimal.NewFromInt(int64(qty))
		if qty == 0 {
			divisor = decimal.NewFromInt(1)
		}
		prices = append(prices, model.UnitPrice{
			ProductName: name,
			UnitHT:      row.HT.Div(divisor),
			UnitTTC:     row.TTC.Div(divisor),
		})
	}
	return prices
}

// Price joins unit prices onto every exploded line by product name. Lines
// without a price keep null amounts.
func (uc *orderUseCase) Price(lines []model.ExplodedLine, prices []model.UnitPrice) ([]model.OrderLine, dto.PriceStats) {
	byName := make(map[string]model.UnitPrice, len(prices))
	for _, p := range prices {
		byName[p.ProductName] = p
	}

	stats := dto.PriceStats{UnitPrices: len(prices)}
	unpriced := map[string]bool{}
	out := make([]model.OrderLine, 0, len(lines))

	for _, l := range lines {
		if strings.Count(l.Products, "\n") == 0 {
			stats.SingleItemLines++
		}

		ol := model.OrderLine{ExplodedLine: l}
		p, ok := byName[l.ProductName]
		if !ok {
			stats.UnpricedLines++
			if !unpriced[l.ProductName] {
				unpriced[l.ProductName] = true
				stats.UnpricedProducts = append(stats.UnpricedProducts, l.ProductName)
			}
			out = append(out, ol)
			continue
		}

		qty := decimal.NewFromInt(int64(l.Quantity))
		ol.UnitHT = decimal.NewNullDecimal(money.Round2(p.UnitHT))
		ol.UnitTTC = decimal.NewNullDecimal(money.Round2(p.UnitTTC))
		ol.TotalHT = decimal.NewNullDecimal(money.Round2(p.UnitHT.Mul(qty)))
		ol.TotalTTC = decimal.NewNullDecimal(money.Round2(p.UnitTTC.Mul(qty)))
		ol.TotalPaid = ol.TotalTTC
		out = append(out, ol)
	}

	if len(stats.UnpricedProducts) > 0 {
		uc.logger.Info("products without a single-item price",
			zap.Int("products", len(stats.UnpricedProducts)),
			zap.Strings("names", stats.UnpricedProducts),
		)
	}
	return out, stats
}
