package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/catalog"
	"github.com/fekuna/omnipos-sales-ledger/internal/catalog/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	repo   catalog.Repository
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *catalogUseCase) LoadCatalog(ctx context.Context, path string) ([]model.CatalogEntry, dto.NormalizeStats, error) {
	raw, err := uc.repo.Load(ctx, path)
	if err != nil {
		return nil, dto.NormalizeStats{}, err
	}
	entries, stats := uc.Normalize(raw)
	uc.logger.Info("loaded catalog",
		zap.String("path", path),
		zap.Int("read", stats.Read),
		zap.Int("excluded", stats.Excluded),
		zap.Int("entries", stats.Entries),
	)
	return entries, stats, nil
}

// Normalize drops internal SKUs and decodes composite labels.
func (uc *catalogUseCase) Normalize(raw []dto.RawProduct) ([]model.CatalogEntry, dto.NormalizeStats) {
	stats := dto.NormalizeStats{Read: len(raw)}
	entries := make([]model.CatalogEntry, 0, len(raw))

	for _, p := range raw {
		if catalog.Excluded(p.Label) {
			stats.Excluded++
			continue
		}
		l := catalog.DecodeLabel(p.Label)
		entries = append(entries, model.CatalogEntry{
			IDSextan:    strings.ToLower(p.IDSextan),
			Category:    l.Category,
			ProductName: l.Name,
			UnitCost:    p.UnitCost,
			Family:      strings.ToLower(strings.TrimSpace(p.Family)),
			Container:   l.Container,
			ShelfLife:   l.ShelfLife,
		})
	}

	stats.Entries = len(entries)
	return entries, stats
}
