package order

import (
	"context"

	"github.com/fekuna/omnipos-sales-ledger/internal/model"
)

type Repository interface {
	// Load reads an Izydesk export into order rows. Corner fields are left empty.
	Load(ctx context.Context, path string) ([]model.OrderRow, error)
}
