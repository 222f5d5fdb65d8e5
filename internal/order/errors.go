package order

import "errors"

var (
	ErrMissingColumn = errors.New("order export: missing required column")
	ErrInvalidAmount = errors.New("order export: invalid amount")
)
