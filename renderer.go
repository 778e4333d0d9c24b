package docpage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rezkam/docpage/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter     = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CodeBlockRenderer = pipeline.MermaidRenderer{}
)

// Renderer converts Markdown source files into HTML page and fragment
// artifacts. Create with NewRenderer, then call Render per source file.
type Renderer struct {
	cfg       rendererConfig
	templates *TemplateCache
	converter pipeline.HTMLConverter
}

// NewRenderer creates a Renderer with default configuration. Use options
// to customize behavior (e.g. WithTemplateCache, WithFallbackTitle).
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg: rendererConfig{fallbackTitle: DefaultFallbackTitle},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.templates == nil {
		r.templates = NewTemplateCache()
	}
	// Create converter if not injected (e.g., by tests)
	if r.converter == nil {
		r.converter = pipeline.NewGoldmarkConverter(r.cfg.codeRenderer)
	}

	return r
}

// Templates returns the renderer's template cache, so the owner can
// invalidate it for hot-reload.
func (r *Renderer) Templates() *TemplateCache {
	return r.templates
}

// Render reads the Markdown file at path, converts it, and writes the
// full-page and fragment artifacts next to the source. Returns the path
// of the full-page .html output.
//
// The two writes are sequential and not transactional: a failure between
// them leaves the .html file ahead of the .body.html file.
func (r *Renderer) Render(ctx context.Context, path string) (string, error) {
	// Fast path: check context before touching the filesystem
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source, err := os.ReadFile(path) // #nosec G304 -- source path is caller-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	title, ok := pipeline.ExtractTitle(string(source))
	if !ok {
		title = r.cfg.fallbackTitle
	}

	body, err := r.converter.ToHTML(ctx, string(source))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	tpl, err := r.templates.Get()
	if err != nil {
		return "", err
	}

	page := strings.Replace(tpl, TitlePlaceholder, escapeTitle(title), 1)
	page = strings.Replace(page, ContentPlaceholder, body, 1)

	htmlPath := outputPath(path, ".html")
	if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	payload, err := json.Marshal(Fragment{Title: title, Body: body})
	if err != nil {
		return "", fmt.Errorf("encoding fragment: %w", err)
	}
	if err := os.WriteFile(outputPath(path, ".body.html"), payload, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return htmlPath, nil
}

// escapeTitle escapes the title for the template's title region. Only '<'
// is escaped; the title is plain heading text, not markup.
func escapeTitle(title string) string {
	return strings.ReplaceAll(title, "<", "&lt;")
}

// outputPath swaps the source file extension for ext, keeping the
// directory: docs/guide.md -> docs/guide<ext>.
func outputPath(source, ext string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ext
}
