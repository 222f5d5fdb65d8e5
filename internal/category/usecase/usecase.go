package usecase

import (
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/category"
	"github.com/fekuna/omnipos-sales-ledger/internal/category/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/model"
	"github.com/fekuna/omnipos-sales-ledger/internal/textnorm"
	"go.uber.org/zap"
)

// Fallback is the category of lines no rule claims.
const Fallback = "autre"

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) Classify(lines []model.MergedLine) ([]model.MergedLine, dto.ClassifyStats) {
	stats := dto.ClassifyStats{Lines: len(lines), ByCategory: map[string]int{}}
	out := make([]model.MergedLine, len(lines))

	for i, line := range lines {
		family, kept, overridden := uc.family(line)
		if kept {
			stats.FromCatalog++
		}
		if overridden {
			stats.Overridden++
		}
		cat, ok := uc.category(line, family)
		if !ok {
			stats.Fallback++
		}

		line.Family = family
		line.Category = cat
		out[i] = line
		stats.ByCategory[cat]++
	}

	uc.logger.Info("classified lines",
		zap.Int("lines", stats.Lines),
		zap.Int("family_from_catalog", stats.FromCatalog),
		zap.Int("anti_gaspi_overrides", stats.Overridden),
		zap.Int("category_fallback", stats.Fallback),
		zap.Any("by_category", stats.ByCategory),
	)
	return out, stats
}

// Family returns the final family of a line.
func (uc *categoryUseCase) Family(line model.MergedLine) string {
	f, _, _ := uc.family(line)
	return f
}

// Category returns the category of a line carrying the given family.
func (uc *categoryUseCase) Category(line model.MergedLine, family string) string {
	c, _ := uc.category(line, family)
	return c
}

func (uc *categoryUseCase) family(line model.MergedLine) (string, bool, bool) {
	s := subject(line)

	family, kept := existingFamily(line)
	if !kept {
		family, _, _ = category.Apply(uc.repo.FamilyRules(), s)
	}

	if f, rule, ok := category.Apply(uc.repo.OverrideRules(), s); ok {
		uc.logger.Debug("family overridden",
			zap.String("product", line.ProductName),
			zap.String("from", family),
			zap.String("to", f),
			zap.String("rule", rule),
		)
		return f, kept, true
	}
	return family, kept, false
}

func (uc *categoryUseCase) category(line model.MergedLine, family string) (string, bool) {
	s := subject(line)
	s.Family = textnorm.Fold(family)
	if c, _, ok := category.Apply(uc.repo.CategoryRules(), s); ok {
		return c, true
	}
	return Fallback, false
}

// existingFamily is the family set by a previous run, else the catalog's.
func existingFamily(line model.MergedLine) (string, bool) {
	if f := strings.TrimSpace(line.Family); f != "" {
		return f, true
	}
	if f := strings.TrimSpace(line.Catalog.Family); f != "" {
		return f, true
	}
	return "", false
}

func subject(line model.MergedLine) category.Subject {
	return category.Subject{
		Product: textnorm.Fold(line.ProductName),
		Name:    textnorm.Fold(line.ProductSextan),
		Display: line.ProductSextan,
		Code:    strings.TrimSpace(line.Catalog.Category),
	}
}
