//go:build integration

package integration_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
	"github.com/lprior-repo/shitty-swarm-manager/internal/spawn"
)

func TestSpawnWorkflow(t *testing.T) {
	env := setupTestEnv(t, "# Swarm Agent {N}\n\nClaim beads as agent {N} until none remain.\n")

	var out bytes.Buffer
	result, err := spawn.Run(spawn.Options{
		Count:        12,
		TemplatePath: env.TemplatePath,
		OutDir:       env.OutDir,
		BuildVersion: "0.3.0",
	}, &out)
	if err != nil {
		t.Fatalf("spawn.Run: %v", err)
	}

	if len(result.Files) != 12 {
		t.Fatalf("expected 12 files, got %d", len(result.Files))
	}

	// Every generated file is rendered for its own index.
	first := readFile(t, filepath.Join(env.OutDir, "agent_01.md"))
	if !strings.Contains(first, "Swarm Agent 1\n") || strings.Contains(first, "{N}") {
		t.Errorf("agent_01.md not fully rendered:\n%s", first)
	}
	last := readFile(t, filepath.Join(env.OutDir, "agent_12.md"))
	if !strings.Contains(last, "as agent 12 ") {
		t.Errorf("agent_12.md not rendered for index 12:\n%s", last)
	}

	// Stdout carries both sections in order.
	stdout := out.String()
	promptsAt := strings.Index(stdout, spawn.PromptsHeader)
	invocationsAt := strings.Index(stdout, spawn.InvocationsHeader)
	if promptsAt != 0 || invocationsAt < promptsAt {
		t.Errorf("section headers missing or out of order:\n%s", stdout)
	}
	if strings.Count(stdout, "Task(") != 12 {
		t.Errorf("expected 12 Task invocations, got %d", strings.Count(stdout, "Task("))
	}

	// list sees what spawn wrote.
	files, err := spawn.Generated(env.OutDir)
	if err != nil {
		t.Fatalf("spawn.Generated: %v", err)
	}
	if len(files) != 12 || files[0].ID != 1 || files[11].ID != 12 {
		t.Fatalf("Generated() = %v", files)
	}

	// render previews the same content spawn wrote.
	tmpl, err := prompt.Load(env.TemplatePath)
	if err != nil {
		t.Fatalf("prompt.Load: %v", err)
	}
	if prompt.Render(tmpl, 5) != readFile(t, files[4].Path) {
		t.Error("render preview differs from spawned file")
	}

	// clean removes everything spawn created.
	removed, err := spawn.Clean(env.OutDir)
	if err != nil {
		t.Fatalf("spawn.Clean: %v", err)
	}
	if removed != 12 {
		t.Errorf("Clean() removed %d, want 12", removed)
	}
}

func TestSpawnMissingTemplate(t *testing.T) {
	repo := t.TempDir()
	outDir := filepath.Join(repo, ".agents", "generated")

	var out bytes.Buffer
	_, err := spawn.Run(spawn.Options{
		Count:        12,
		TemplatePath: filepath.Join(repo, ".agents", "agent_prompt.md"),
		OutDir:       outDir,
	}, &out)
	if err == nil {
		t.Fatal("expected error for missing template")
	}

	var nfe *prompt.NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("expected *prompt.NotFoundError, got %T", err)
	}
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Error("output directory was created despite missing template")
	}
}

func TestSpawnStarterTemplate(t *testing.T) {
	env := setupTestEnv(t, prompt.Default())

	var out bytes.Buffer
	if _, err := spawn.Run(spawn.Options{
		Count:        2,
		TemplatePath: env.TemplatePath,
		OutDir:       env.OutDir,
	}, &out); err != nil {
		t.Fatalf("spawn.Run with starter template: %v", err)
	}

	content := readFile(t, filepath.Join(env.OutDir, "agent_02.md"))
	if strings.Contains(content, "{N}") {
		t.Errorf("starter template left unsubstituted placeholders:\n%s", content)
	}
}
