package prompt

import (
	"testing"
)

func TestValidateMeta_Valid(t *testing.T) {
	templates := map[string]string{
		"full front matter": withFrontMatter,
		"partial front matter": `---
description: Agent {N} does one thing
---
body
`,
		"no front matter": "# Agent {N}\nbody\n",
	}

	for name, tmpl := range templates {
		t.Run(name, func(t *testing.T) {
			result, err := ValidateMeta(tmpl)
			if err != nil {
				t.Fatalf("ValidateMeta() error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateMeta_Invalid(t *testing.T) {
	templates := []struct {
		name string
		tmpl string
	}{
		{"unknown key", "---\ndescripton: typo\n---\nbody\n"},
		{"bad subagent_type pattern", "---\nsubagent_type: General Purpose\n---\nbody\n"},
		{"empty description", "---\ndescription: \"\"\n---\nbody\n"},
		{"non-string requires", "---\nrequires: 2\n---\nbody\n"},
	}

	for _, tt := range templates {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateMeta(tt.tmpl)
			if err != nil {
				t.Fatalf("ValidateMeta() unexpected error: %v", err)
			}
			if result.Valid {
				t.Error("expected invalid, got valid")
			}
			if len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidateMeta_InvalidYAML(t *testing.T) {
	_, err := ValidateMeta("---\ndescription: [unclosed\n---\nbody\n")
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
