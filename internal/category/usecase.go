package category

import (
	"github.com/fekuna/omnipos-sales-ledger/internal/category/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
)

type UseCase interface {
	Classify(lines []model.MergedLine) ([]model.MergedLine, dto.ClassifyStats)
	Family(line model.MergedLine) string
	Category(line model.MergedLine, family string) string
}
