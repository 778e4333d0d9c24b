package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// CodeBlockRenderer decides how fenced code blocks are emitted.
// Handles reports whether the strategy claims the given language tag;
// claimed blocks are rendered by RenderCodeBlock, all others fall through
// to the engine's default emission (syntax-highlighted <pre><code>).
type CodeBlockRenderer interface {
	Handles(lang string) bool
	RenderCodeBlock(w io.Writer, lang, source string) error
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
// The fragment carries no document shell; wrapping in a full page is the
// caller's job.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// syntax highlighting, and the given code-block strategy. A nil strategy
// defaults to MermaidRenderer.
func NewGoldmarkConverter(strategy CodeBlockRenderer) *GoldmarkConverter {
	if strategy == nil {
		strategy = MermaidRenderer{}
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the template stylesheet controls colors
				),
			),
			&codeBlockExtension{strategy: strategy},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Stable anchors for deep links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Hard wraps intentionally NOT enabled: documentation sources
			// are reflowed prose, single newlines must not become <br>.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// codeBlockExtension wires a CodeBlockRenderer into goldmark. Claimed
// fenced code blocks are rewritten into diagramBlock nodes at parse time
// so unclaimed blocks keep flowing through the highlighting extension's
// renderer untouched.
type codeBlockExtension struct {
	strategy CodeBlockRenderer
}

func (e *codeBlockExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&codeBlockTransformer{strategy: e.strategy}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&diagramHTMLRenderer{strategy: e.strategy}, 100),
	))
}

// kindDiagramBlock identifies replacement nodes for claimed code blocks.
var kindDiagramBlock = ast.NewNodeKind("DiagramBlock")

// diagramBlock replaces a fenced code block whose language the strategy
// claimed. It carries the language tag and the raw block content.
type diagramBlock struct {
	ast.BaseBlock
	language string
	literal  []byte
}

func (n *diagramBlock) Kind() ast.NodeKind { return kindDiagramBlock }

func (n *diagramBlock) IsRaw() bool { return true }

func (n *diagramBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Language": n.language}, nil)
}

// codeBlockTransformer swaps claimed fenced code blocks for diagramBlock
// nodes after parsing.
type codeBlockTransformer struct {
	strategy CodeBlockRenderer
}

func (t *codeBlockTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var claimed []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if t.strategy.Handles(string(block.Language(source))) {
			claimed = append(claimed, block)
		}
		return ast.WalkContinue, nil
	})

	for _, block := range claimed {
		replacement := &diagramBlock{
			language: string(block.Language(source)),
			literal:  blockContent(block, source),
		}
		parent := block.Parent()
		parent.ReplaceChild(parent, block, replacement)
	}
}

// blockContent concatenates the source lines covered by a block node.
func blockContent(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.Bytes()
}

// diagramHTMLRenderer emits diagramBlock nodes through the strategy.
type diagramHTMLRenderer struct {
	strategy CodeBlockRenderer
}

func (r *diagramHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindDiagramBlock, r.render)
}

func (r *diagramHTMLRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	block := node.(*diagramBlock)
	if err := r.strategy.RenderCodeBlock(w, block.language, string(block.literal)); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}
