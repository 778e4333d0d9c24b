package docpage

import "errors"

// Sentinel errors for library operations.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrReadSource       = errors.New("failed to read markdown source")
	ErrHTMLConversion   = errors.New("HTML conversion failed")
	ErrWriteOutput      = errors.New("failed to write rendered output")
)
