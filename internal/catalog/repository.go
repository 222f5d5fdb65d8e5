package catalog

import (
	"context"

	"github.com/fekuna/omnipos-sales-ledger/internal/catalog/dto"
)

type Repository interface {
	Load(ctx context.Context, path string) ([]dto.RawProduct, error)
}
