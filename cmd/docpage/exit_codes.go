package main

import (
	"errors"
	"os"

	docpage "github.com/rezkam/docpage"
	"github.com/rezkam/docpage/internal/engine"
)

// Exit codes for the docpage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or inputs
	ExitIO      = 3 // File not found, permission denied
	ExitAsset   = 4 // Template or other static asset missing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Missing template/assets (exit 4)
	if errors.Is(err, docpage.ErrTemplateNotFound) ||
		engine.IsAssetNotFound(err) {
		return ExitAsset
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, docpage.ErrReadSource) ||
		errors.Is(err, docpage.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		engine.IsModelNotFound(err) {
		return ExitUsage
	}

	return ExitGeneral
}
