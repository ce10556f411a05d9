package main

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrLoadConfig      = errors.New("load config failed")
	ErrNothingToExport = errors.New("nothing to export")
	ErrExport          = errors.New("export failed")
)
