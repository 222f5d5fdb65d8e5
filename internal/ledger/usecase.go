package ledger

import (
	"context"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/matcher"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
)

type UseCase interface {
	// Reconcile runs the whole pipeline for one pair of exports and writes
	// the output tables. Nothing is written when any step fails.
	Reconcile(ctx context.Context, in dto.RunInput) (*dto.Report, error)

	Merge(lines []model.OrderLine, catalog []model.CatalogEntry, names *matcher.Result) ([]model.MergedLine, dto.MergeStats)
}
