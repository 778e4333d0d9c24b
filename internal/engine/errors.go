// Package engine defines the error surface of the agent-engine wrapper.
//
// The engine itself (sessions, providers, streaming) lives in an external
// runtime library; this package owns the small closed taxonomy its
// failures are reported through, so callers branch on error kind and
// stable text code instead of matching message strings.
package engine

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// CategoryEngine tags all engine wrapper errors.
var CategoryEngine = goerrors.Category("engine")

// Stable machine-readable codes, one per error kind. These are part of
// the wrapper's contract; never renumber or reuse them.
const (
	CodeNoSession     = "ENGINE_NO_SESSION"
	CodeModelNotFound = "ENGINE_MODEL_NOT_FOUND"
	CodeAssetNotFound = "ENGINE_ASSET_NOT_FOUND"
)

// Sentinel causes, matchable with errors.Is.
var (
	ErrNoSession     = errors.New("no active session for requested operation")
	ErrModelNotFound = errors.New("model not found in registry")
	ErrAssetNotFound = errors.New("static asset not found at any searched path")
)

// NoSessionError reports an operation that requires an active engine
// session when none exists.
func NoSessionError(operation string) error {
	return goerrors.Wrap(ErrNoSession, CategoryEngine,
		fmt.Sprintf("no active session for %s", operation)).
		WithTextCode(CodeNoSession)
}

// ModelNotFoundError reports a model or provider absent from the engine's
// registry.
func ModelNotFoundError(model string) error {
	return goerrors.Wrap(ErrModelNotFound, CategoryEngine,
		fmt.Sprintf("model %q not found in registry", model)).
		WithTextCode(CodeModelNotFound)
}

// AssetNotFoundError reports a required static asset missing from every
// searched location.
func AssetNotFoundError(name string, searched []string) error {
	return goerrors.Wrap(ErrAssetNotFound, CategoryEngine,
		fmt.Sprintf("asset %q not found, searched %s", name, strings.Join(searched, ", "))).
		WithTextCode(CodeAssetNotFound)
}

// Code returns the stable text code carried by an engine error, or ""
// for non-engine errors.
func Code(err error) string {
	var e *goerrors.Error
	if errors.As(err, &e) {
		return e.TextCode
	}
	return ""
}

// IsNoSession reports whether err is a no-active-session engine error.
func IsNoSession(err error) bool {
	return errors.Is(err, ErrNoSession)
}

// IsModelNotFound reports whether err is a model-not-in-registry engine error.
func IsModelNotFound(err error) bool {
	return errors.Is(err, ErrModelNotFound)
}

// IsAssetNotFound reports whether err is a missing-static-asset engine error.
func IsAssetNotFound(err error) bool {
	return errors.Is(err, ErrAssetNotFound)
}
