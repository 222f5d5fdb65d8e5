package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/ledger"
	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"go.uber.org/zap"
)

var ErrUnknownFormat = errors.New("ledger: unknown export format")

// NewExporters returns one exporter per format. xlsx is always included.
func NewExporters(formats []string) ([]ledger.Exporter, error) {
	exporters := []ledger.Exporter{NewXLSXExporter()}
	seen := map[string]bool{"xlsx": true}

	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		switch f {
		case "csv":
			exporters = append(exporters, NewCSVExporter())
		case "sqlite":
			exporters = append(exporters, NewSQLiteExporter())
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}
	return exporters, nil
}

// StagedRepository renders every format into a staging directory under dir
// and moves the files into dir once all of them were written.
type StagedRepository struct {
	dir       string
	exporters []ledger.Exporter
	logger    logger.ZapLogger
}

func NewStagedRepository(dir string, exporters []ledger.Exporter, log logger.ZapLogger) *StagedRepository {
	return &StagedRepository{
		dir:       dir,
		exporters: exporters,
		logger:    log,
	}
}

func (r *StagedRepository) Save(ctx context.Context, t *dto.Tables) ([]string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, err
	}
	stage, err := os.MkdirTemp(r.dir, ".staging-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(stage)

	var staged []string
	for _, e := range r.exporters {
		files, err := e.Export(ctx, stage, t)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", e.Format(), err)
		}
		r.logger.Debug("rendered export", zap.String("format", e.Format()), zap.Strings("files", files))
		staged = append(staged, files...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(staged))
	for _, f := range staged {
		dst := filepath.Join(r.dir, filepath.Base(f))
		if err := os.Rename(f, dst); err != nil {
			return out, fmt.Errorf("publish %s: %w", filepath.Base(f), err)
		}
		out = append(out, dst)
	}
	return out, nil
}
