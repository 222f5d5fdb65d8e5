package catalog

import (
	"context"

	"github.com/fekuna/omnipos-sales-ledger/internal/catalog/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
)

type UseCase interface {
	// LoadCatalog loads and normalizes a Sextan export.
	LoadCatalog(ctx context.Context, path string) ([]model.CatalogEntry, dto.NormalizeStats, error)
	Normalize(raw []dto.RawProduct) ([]model.CatalogEntry, dto.NormalizeStats)
}
