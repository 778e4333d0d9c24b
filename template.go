package docpage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TemplateFileName is the file name searched for at each candidate location.
const TemplateFileName = "template.html"

// Placeholder tokens substituted into the template, each exactly once per
// render. Substitution is a literal string replacement, not templating: a
// template missing a token silently yields un-substituted output.
const (
	TitlePlaceholder   = "{{TITLE}}"
	ContentPlaceholder = "{{CONTENT}}"
)

// TemplateCache loads the HTML template from the first existing candidate
// path and caches it until Invalidate is called. It holds no lock; callers
// racing Get and Invalidate must synchronize themselves.
type TemplateCache struct {
	candidates []string
	loaded     bool
	content    string
}

// NewTemplateCache creates a cache over the given candidate paths, in
// order. With no arguments it uses DefaultTemplateCandidates.
func NewTemplateCache(candidates ...string) *TemplateCache {
	if len(candidates) == 0 {
		candidates = DefaultTemplateCandidates()
	}
	return &TemplateCache{candidates: candidates}
}

// DefaultTemplateCandidates returns the ordered search locations for
// template.html: next to the executable, under assets/ next to the
// executable, the working directory, and assets/ under the working
// directory.
func DefaultTemplateCandidates() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, TemplateFileName),
			filepath.Join(dir, "assets", TemplateFileName),
		)
	}
	return append(paths,
		TemplateFileName,
		filepath.Join("assets", TemplateFileName),
	)
}

// Get returns the template content, reading it from disk on first use.
// Returns ErrTemplateNotFound when no candidate path exists.
func (c *TemplateCache) Get() (string, error) {
	if c.loaded {
		return c.content, nil
	}

	for _, path := range c.candidates {
		data, err := os.ReadFile(path) // #nosec G304 -- candidates are fixed or caller-supplied
		if err == nil {
			c.content = string(data)
			c.loaded = true
			return c.content, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading template %s: %w", path, err)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrTemplateNotFound, strings.Join(c.candidates, ", "))
}

// Invalidate drops the cached content so the next Get re-reads from disk.
// Supports template hot-reload in development without a process restart.
func (c *TemplateCache) Invalidate() {
	c.loaded = false
	c.content = ""
}

// Candidates returns the search paths, in order.
func (c *TemplateCache) Candidates() []string {
	out := make([]string, len(c.candidates))
	copy(out, c.candidates)
	return out
}
