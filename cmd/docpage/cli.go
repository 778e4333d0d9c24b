package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rezkam/docpage/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input files: usage: docpage [flags] <file.md> [<file.md>...]")
	ErrInvalidExtension = errors.New("input must have .md or .markdown extension")
)

// documentRenderer is the rendering surface the CLI depends on.
type documentRenderer interface {
	Render(ctx context.Context, path string) (string, error)
}

// debugLogger is the slice of the logger the render loop needs.
type debugLogger interface {
	Debug(msg string, args ...any)
}

// run validates the inputs and renders them in order, printing each
// created output path. The first failure stops the run.
func run(ctx context.Context, inputs []string, renderer documentRenderer, log debugLogger, stdout io.Writer) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}

	for _, input := range inputs {
		if !fileutil.IsMarkdownPath(input) {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, input)
		}
	}

	for _, input := range inputs {
		log.Debug("rendering", "source", input)
		outPath, err := renderer.Render(ctx, input)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", input, err)
		}
		fmt.Fprintf(stdout, "Created %s\n", outPath)
	}
	return nil
}
