package pipeline

import (
	"html"
	"io"
	"regexp"
	"strings"
)

// MermaidLang is the fenced-code-block language tag claimed by MermaidRenderer.
const MermaidLang = "mermaid"

// Styling directives stripped from diagram sources. Diagrams are rendered
// client-side with the page's fixed theme; author-supplied styling would
// fight it, so it is removed at build time. Matched against trimmed lines.
var (
	styleDirective    = regexp.MustCompile(`^style\s+\S+\s+\S+`)
	initDirective     = regexp.MustCompile(`^%%\{init`)
	classDefDirective = regexp.MustCompile(`^classDef\s+\S+`)
	classAssignment   = regexp.MustCompile(`^class\s+\S+\s+\S+$`)
)

// CleanDiagramSource removes styling directives from raw diagram source:
// "style <node> <props>" lines, "%%{init: ...}" front matter, "classDef"
// definitions, and two-token "class <node> <className>" assignments.
// All other lines pass through unchanged, in order. The result is trimmed
// of leading and trailing whitespace.
func CleanDiagramSource(code string) string {
	lines := strings.Split(code, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if styleDirective.MatchString(trimmed) ||
			initDirective.MatchString(trimmed) ||
			classDefDirective.MatchString(trimmed) ||
			classAssignment.MatchString(trimmed) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// Diagram container markup. The outer div carries the zoom controls, the
// viewport div is the pannable area, and the inner "mermaid" div is the
// host picked up by the client-side renderer. Its text content is the
// sanitized diagram source.
const (
	diagramOpen = `<div class="diagram">
<div class="diagram-controls"><button type="button" class="diagram-zoom-in" aria-label="Zoom in">+</button><button type="button" class="diagram-zoom-out" aria-label="Zoom out">&#8722;</button><button type="button" class="diagram-zoom-reset" aria-label="Reset zoom">&#8635;</button></div>
<div class="diagram-viewport"><div class="mermaid">`
	diagramClose = `</div></div>
</div>
`
)

// MermaidRenderer is the default code-block strategy: it claims fenced
// blocks tagged "mermaid" and emits an interactive diagram container in
// place of the usual <pre><code> markup.
type MermaidRenderer struct{}

func (MermaidRenderer) Handles(lang string) bool {
	return lang == MermaidLang
}

func (MermaidRenderer) RenderCodeBlock(w io.Writer, _, source string) error {
	cleaned := CleanDiagramSource(source)
	_, err := io.WriteString(w, diagramOpen+html.EscapeString(cleaned)+diagramClose)
	return err
}

// Compile-time interface check.
var _ CodeBlockRenderer = MermaidRenderer{}
