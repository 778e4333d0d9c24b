// Package pipeline implements the Markdown-to-HTML conversion stage.
//
// The package handles title extraction, Markdown conversion via Goldmark,
// and the code-block strategy hook used to turn fenced "mermaid" blocks
// into client-rendered diagram containers:
//   - Title extraction from the first level-1 heading
//   - Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//   - Diagram source sanitization (styling directives stripped)
//   - Pluggable fenced-code-block rendering via CodeBlockRenderer
//
// Template loading and output serialization are handled by the root
// docpage package.
package pipeline
