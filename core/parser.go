package core

import (
	"strings"

	yaml "gopkg.in/yaml.v3"
)

const frontMatterFence = "---"

// ParseFrontMatter splits raw into its front-matter and body. The front-matter
// must start at the first line and be closed by a line containing only the
// fence. A file without a complete block has no metadata and its whole text
// is the body. A block that does not decode into a mapping yields empty
// metadata, but its body is still everything after the closing fence.
func ParseFrontMatter(raw string) (map[string]any, string) {
	block, body, ok := splitFrontMatter(raw)
	if !ok {
		return map[string]any{}, raw
	}

	data := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &data); err != nil || data == nil {
		return map[string]any{}, body
	}

	return data, body
}

func splitFrontMatter(raw string) (string, string, bool) {
	first, rest, found := cutLine(raw)
	if !found || first != frontMatterFence {
		return "", "", false
	}

	var block strings.Builder
	for rest != "" {
		var line string
		line, rest, _ = cutLine(rest)
		if line == frontMatterFence {
			return block.String(), rest, true
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}

	return "", "", false
}

// cutLine returns the first line of s without its line ending, the remainder
// after the line ending, and whether a line ending was found. Trailing
// whitespace does not count as part of a fence line.
func cutLine(s string) (string, string, bool) {
	line, rest, found := strings.Cut(s, "\n")
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimRight(line, " \t") == frontMatterFence {
		line = frontMatterFence
	}
	return line, rest, found || line != ""
}
