package view

import "errors"

// Error variables for store construction and ratio aggregates.
var (
	ErrEmptyID         = errors.New("record id is empty")
	ErrDuplicateID     = errors.New("duplicate record id")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrUndefinedRatio  = errors.New("ratio undefined: denominator is zero")
)
