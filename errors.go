package fusionfmt

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidLineEnding = errors.New("invalid line ending")
	ErrInvalidPattern    = errors.New("invalid redundant pattern")

	// Tool database errors.
	ErrToolDBNotFound = errors.New("tool database not found")
	ErrToolDBParse    = errors.New("failed to parse tool database")
)
