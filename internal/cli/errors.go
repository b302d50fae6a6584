package cli

import "errors"

// Error variables for command-line handling.
var (
	errNoCommand       = errors.New("no command provided")
	errUnknownCommand  = errors.New("unknown command")
	errUnexpectedArgs  = errors.New("unexpected arguments")
	errOutRequired     = errors.New("--out is required")
	errUnknownFormat   = errors.New("unknown format (want json|yaml)")
	errShellArgs       = errors.New("usage")
	errUnknownShellCmd = errors.New("unknown shell command")
	errInvalidOption   = errors.New("invalid value")
)
