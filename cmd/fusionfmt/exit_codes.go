package main

import (
	"errors"
	"os"

	fusionfmt "github.com/dkarlsen/fusionfmt"
	"github.com/dkarlsen/fusionfmt/internal/config"
	"github.com/dkarlsen/fusionfmt/internal/dateutil"
)

// Exit codes for the fusionfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files formatted
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFilesFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, fusionfmt.ErrInvalidLineEnding) ||
		errors.Is(err, fusionfmt.ErrInvalidPattern) ||
		errors.Is(err, fusionfmt.ErrToolDBParse) ||
		errors.Is(err, dateutil.ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	return ExitGeneral
}

// exitCodeForResults folds per-file errors into one exit code, preferring
// the most specific non-general code seen.
func exitCodeForResults(results []FormatResult) int {
	code := ExitSuccess
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		c := exitCodeFor(r.Err)
		if code == ExitSuccess || code == ExitGeneral {
			code = c
		}
	}
	return code
}
