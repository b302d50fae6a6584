package farm

import "errors"

// Error variables for dataset validation and fixture loading.
var (
	ErrInvalidValue   = errors.New("invalid value")
	ErrFixtureRead    = errors.New("cannot read data file")
	ErrFixtureInvalid = errors.New("invalid data file")
)
