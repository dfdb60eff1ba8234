package prompt

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Placeholder tokens replaced with the agent's numeric index. Both spellings
// are accepted; #{N} is replaced first so the bare token never matches inside it.
const (
	TokenHash = "#{N}"
	Token     = "{N}"
)

// DefaultPath is the canonical template location relative to the repo root.
const DefaultPath = ".agents/agent_prompt.md"

// DefaultOutDir is the canonical output directory for rendered prompts.
const DefaultOutDir = ".agents/generated"

//go:embed default/agent_prompt.md
var defaultTemplate string

// Default returns the embedded starter template written by `swarmgen init`.
func Default() string {
	return defaultTemplate
}

// CanonicalPath returns the template path under a repo root (.agents/agent_prompt.md).
func CanonicalPath(root string) string {
	return filepath.Join(root, ".agents", "agent_prompt.md")
}

// NotFoundError reports a template path that does not reference a readable file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Path)
}

// Load reads a template file as UTF-8 text. A missing file is reported as a
// *NotFoundError so callers can distinguish the designed failure path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Path: path}
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes every placeholder occurrence with the decimal form of id.
// Pure and total: any string and any index produce a result.
func Render(template string, id int) string {
	n := strconv.Itoa(id)
	out := strings.ReplaceAll(template, TokenHash, n)
	return strings.ReplaceAll(out, Token, n)
}

// HasPlaceholder reports whether s contains either placeholder spelling.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, Token) || strings.Contains(s, TokenHash)
}
