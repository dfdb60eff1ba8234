package prompt

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Meta holds the optional template front matter. All fields customize the
// printed Task invocation descriptors; Requires constrains the swarmgen
// version allowed to spawn from this template.
type Meta struct {
	Description  string `yaml:"description"`
	SubagentType string `yaml:"subagent_type"`
	Command      string `yaml:"command"`
	Requires     string `yaml:"requires"`
}

const frontMatterDelim = "---"

// splitFrontMatter separates a leading YAML front matter block from the body.
// The block must start on the first line with "---" and end with a "---" line.
// ok is false when the template carries no front matter.
func splitFrontMatter(template string) (meta, body string, ok bool) {
	normalized := strings.ReplaceAll(template, "\r\n", "\n")
	lines := strings.SplitAfter(normalized, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\n") != frontMatterDelim {
		return "", template, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\n") == frontMatterDelim {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), true
		}
	}

	// Unterminated block: treat the whole template as body.
	return "", template, false
}

// ParseMeta extracts and decodes the front matter of a template.
// Returns (nil, nil) when the template has none. The template body is never
// modified by front matter handling; generated files carry it verbatim.
func ParseMeta(template string) (*Meta, error) {
	raw, _, ok := splitFrontMatter(template)
	if !ok {
		return nil, nil
	}

	var m Meta
	if err := yaml.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("parsing template front matter: %w", err)
	}
	return &m, nil
}

// Body returns the template with any front matter block removed.
func Body(template string) string {
	_, body, ok := splitFrontMatter(template)
	if !ok {
		return template
	}
	return body
}
