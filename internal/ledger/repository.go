package ledger

import (
	"context"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
)

// Repository persists the tables of a run and returns the files written.
type Repository interface {
	Save(ctx context.Context, tables *dto.Tables) ([]string, error)
}

// Exporter renders the tables in one format into dir.
type Exporter interface {
	Format() string
	Export(ctx context.Context, dir string, tables *dto.Tables) ([]string, error)
}
