//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to an isolated fake repo layout.
type testEnv struct {
	RepoDir      string // mock repo root containing .agents/
	TemplatePath string // .agents/agent_prompt.md inside RepoDir
	OutDir       string // .agents/generated inside RepoDir
}

// setupTestEnv creates an isolated repo directory with a populated template.
func setupTestEnv(t *testing.T, template string) *testEnv {
	t.Helper()

	repo := t.TempDir()
	env := &testEnv{
		RepoDir:      repo,
		TemplatePath: filepath.Join(repo, ".agents", "agent_prompt.md"),
		OutDir:       filepath.Join(repo, ".agents", "generated"),
	}

	if err := os.MkdirAll(filepath.Dir(env.TemplatePath), 0755); err != nil {
		t.Fatalf("creating .agents: %v", err)
	}
	if err := os.WriteFile(env.TemplatePath, []byte(template), 0644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	return env
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
