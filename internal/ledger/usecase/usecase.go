package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-ledger/internal/catalog"
	"github.com/fekuna/omnipos-sales-ledger/internal/category"
	"github.com/fekuna/omnipos-sales-ledger/internal/ledger"
	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/matcher"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/fekuna/omnipos-sales-ledger/internal/order"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ledgerUseCase struct {
	orders     order.UseCase
	catalog    catalog.UseCase
	classifier category.UseCase
	repo       ledger.Repository
	workers    int
	logger     logger.ZapLogger
}

func NewLedgerUseCase(
	orders order.UseCase,
	cat catalog.UseCase,
	classifier category.UseCase,
	repo ledger.Repository,
	workers int,
	log logger.ZapLogger,
) ledger.UseCase {
	return &ledgerUseCase{
		orders:     orders,
		catalog:    cat,
		classifier: classifier,
		repo:       repo,
		workers:    workers,
		logger:     log,
	}
}

func (uc *ledgerUseCase) Reconcile(ctx context.Context, in dto.RunInput) (*dto.Report, error) {
	start := time.Now()
	rep := &dto.Report{RunID: uuid.New().String()}
	log := uc.logger.With(zap.String("run_id", rep.RunID))

	rows, c, err := uc.orders.LoadOrders(ctx, in.IzydeskPath)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	entries, cs, err := uc.catalog.LoadCatalog(ctx, in.SextanPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	rep.Corner = c
	rep.CatalogRead, rep.CatalogExcluded, rep.CatalogEntries = cs.Read, cs.Excluded, cs.Entries

	exploded, xs := uc.orders.Explode(rows)
	rep.Orders, rep.EmptyBundles = xs.Orders, xs.EmptyBundles
	rep.ExplodedLines, rep.DroppedSegments = xs.Lines, xs.DroppedSegments

	prices := uc.orders.ResolveUnitPrices(rows)
	lines, ps := uc.orders.Price(exploded, prices)
	rep.UnitPrices, rep.UnpricedLines, rep.UnpricedProducts = ps.UnitPrices, ps.UnpricedLines, ps.UnpricedProducts

	names, err := matcher.Match(ctx, productNames(lines), catalogNames(entries), uc.workers)
	if err != nil {
		return nil, fmt.Errorf("match products: %w", err)
	}
	rep.DistinctNames = len(names.Names)
	rep.MatchedNames = names.Matched()
	rep.UnmatchedNames = names.Unmatched()
	rep.RenamedNames = names.Rewritten()
	log.Debug("product names resolved",
		zap.Int("distinct", rep.DistinctNames),
		zap.Int("matched", rep.MatchedNames),
		zap.Strings("unmatched", rep.UnmatchedNames),
		zap.Any("renamed", rep.RenamedNames),
	)

	merged, ms := uc.Merge(lines, entries, names)
	rep.MergedLines, rep.CatalogHits, rep.Duplicates = ms.Lines, ms.CatalogHits, ms.Duplicates

	classified, cls := uc.classifier.Classify(merged)
	rep.ByCategory = cls.ByCategory

	files, err := uc.repo.Save(ctx, BuildTables(c, lines, classified))
	if err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}
	rep.Files = files
	rep.Duration = time.Since(start)

	log.Info("reconciliation finished",
		zap.String("corner_id", c.ID),
		zap.String("corner", c.Name),
		zap.Int("orders", rep.Orders),
		zap.Int("lines", rep.ExplodedLines),
		zap.Int("dropped_segments", rep.DroppedSegments),
		zap.Int("unpriced_lines", rep.UnpricedLines),
		zap.Int("merged_lines", rep.MergedLines),
		zap.Int("catalog_hits", rep.CatalogHits),
		zap.Int("duplicates", rep.Duplicates),
		zap.Strings("files", rep.Files),
		zap.Duration("took", rep.Duration),
	)
	return rep, nil
}

// Merge left-joins lines onto the catalog by resolved name and drops lines
// repeating an earlier (order, date, time, service, product).
func (uc *ledgerUseCase) Merge(lines []model.OrderLine, entries []model.CatalogEntry, names *matcher.Result) ([]model.MergedLine, dto.MergeStats) {
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, ok := byName[e.ProductName]; !ok {
			byName[e.ProductName] = i
		}
	}

	var stats dto.MergeStats
	seen := make(map[model.DedupKey]bool, len(lines))
	out := make([]model.MergedLine, 0, len(lines))

	for _, l := range lines {
		key, _ := names.Key(l.ProductName)
		m := model.MergedLine{OrderLine: l, MatchName: key, ProductSextan: key}
		if i, ok := byName[key]; ok {
			m.Catalog = entries[i]
			m.Matched = true
			m.ProductSextan = entries[i].ProductName
		}

		if seen[m.Key()] {
			stats.Duplicates++
			continue
		}
		seen[m.Key()] = true
		if m.Matched {
			stats.CatalogHits++
		}
		out = append(out, m)
	}

	stats.Lines = len(out)
	return out, stats
}

func productNames(lines []model.OrderLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.ProductName
	}
	return out
}

func catalogNames(entries []model.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ProductName
	}
	return out
}
