package docpage

import "io"

// DefaultFallbackTitle is used when the Markdown source has no level-1
// heading.
const DefaultFallbackTitle = "Documentation"

// Fragment is the persisted {title, body} payload written to the
// .body.html artifact. Body is the rendered HTML before template
// substitution, so a server can re-wrap it in a current template without
// re-invoking the Markdown engine.
type Fragment struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CodeBlockRenderer decides how fenced code blocks are emitted. Handles
// reports whether the strategy claims a language tag; claimed blocks are
// rendered by RenderCodeBlock, all others keep the engine's default
// syntax-highlighted emission.
type CodeBlockRenderer interface {
	Handles(lang string) bool
	RenderCodeBlock(w io.Writer, lang, source string) error
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	fallbackTitle string
	codeRenderer  CodeBlockRenderer
}

// WithFallbackTitle sets the title used when a source has no level-1
// heading. Panics if title is empty (programmer error).
func WithFallbackTitle(title string) Option {
	if title == "" {
		panic("docpage: WithFallbackTitle title must not be empty")
	}
	return func(r *Renderer) {
		r.cfg.fallbackTitle = title
	}
}

// WithTemplateCache sets the template cache used for page wrapping. Pass a
// shared cache to let several renderers (or a server) reuse one template
// and invalidate it centrally.
func WithTemplateCache(cache *TemplateCache) Option {
	return func(r *Renderer) {
		r.templates = cache
	}
}

// WithCodeBlockRenderer replaces the default mermaid diagram strategy.
func WithCodeBlockRenderer(cr CodeBlockRenderer) Option {
	return func(r *Renderer) {
		r.cfg.codeRenderer = cr
	}
}
