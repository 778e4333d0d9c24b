package pipeline

import (
	"regexp"
	"strings"
)

// titlePattern matches the first level-1 heading line.
var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// ExtractTitle returns the trimmed text of the first level-1 heading in
// the Markdown source. The second return value is false when the source
// has no level-1 heading.
func ExtractTitle(source string) (string, bool) {
	match := titlePattern.FindStringSubmatch(source)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}
