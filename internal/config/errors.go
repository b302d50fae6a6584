package config

import "errors"

// Error variables for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrDataFileEmpty      = errors.New("data-file cannot be empty")
	ErrCurrencyEmpty      = errors.New("currency cannot be empty")
	ErrUnknownTheme       = errors.New("unknown theme (want auto|light|dark)")
	ErrUnknownLogLevel    = errors.New("unknown log level (want debug|info|warn|error)")
)
