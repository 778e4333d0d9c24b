// Package docpage renders Markdown documentation sources into
// self-contained HTML pages.
//
// # Quick Start
//
// Create a renderer and point it at a Markdown file:
//
//	r := docpage.NewRenderer()
//	outPath, err := r.Render(ctx, "docs/guide.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Rendering docs/guide.md produces two sibling artifacts:
//
//   - docs/guide.html — the full page: the shared HTML template with its
//     {{TITLE}} and {{CONTENT}} placeholders substituted
//   - docs/guide.body.html — a JSON payload {"title", "body"} holding the
//     rendered body in isolation, so a server can re-wrap it in a freshly
//     loaded template without re-parsing the Markdown
//
// Both artifacts are overwritten on every render.
//
// # Rendering Pipeline
//
// The conversion process follows these stages:
//
//  1. Title extraction from the first level-1 heading (fallback title
//     when the source has none)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Fenced "mermaid" blocks become interactive diagram containers with
//     styling directives stripped from the source
//  4. Template substitution and artifact writes
//
// # Templates
//
// The template is a plain HTML file named template.html discovered via an
// ordered candidate search (next to the executable, then the working
// directory, each with an assets/ variant) and cached for the process
// lifetime. Call [TemplateCache.Invalidate] to force a re-read, e.g. for
// template hot-reload during development. There is no built-in fallback:
// rendering fails when no candidate exists.
//
// # Code Block Strategies
//
// Fenced code block emission is pluggable. The default strategy claims
// "mermaid" blocks; supply your own via WithCodeBlockRenderer:
//
//	r := docpage.NewRenderer(docpage.WithCodeBlockRenderer(myStrategy))
//
// Unclaimed languages keep the engine's default syntax-highlighted output.
//
// # Concurrency
//
// A Renderer performs no locking. Concurrent renders run independent
// read/convert/write sequences; concurrent template cache access and
// invalidation must be synchronized by the caller.
package docpage
