package catalog

import "errors"

var ErrMissingColumn = errors.New("catalog export: missing required column")
