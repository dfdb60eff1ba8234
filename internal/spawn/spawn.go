package spawn

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
)

// Stdout section headers, matching what orchestrator tooling scrapes for.
const (
	PromptsHeader     = "# Generated prompts"
	InvocationsHeader = "# Task tool calls"
)

// Descriptor defaults used when the template front matter does not override them.
const (
	defaultDescription  = "Agent {N} process bead through pipeline"
	defaultSubagentType = "general"
	defaultCommand      = "swarm agent"
)

// Options configures a spawn run.
type Options struct {
	Count        int    // number of agents to generate, 1-based indices
	TemplatePath string // path to the prompt template
	OutDir       string // directory receiving agent_NN.md files
	BuildVersion string // running version, checked against the template's requires constraint
}

// Result reports what a successful run produced.
type Result struct {
	Files []string // generated file paths, ascending agent order
}

// FileName returns the output file name for an agent index, zero-padded to
// at least two digits (agent_01.md, agent_02.md, ... agent_100.md).
func FileName(id int) string {
	return fmt.Sprintf("agent_%02d.md", id)
}

// Run loads the template, writes one rendered prompt file per agent index
// from 1 to Count, and streams two stdout sections to out: the generated
// file paths, then one Task invocation descriptor per agent.
//
// A missing template is reported as *prompt.NotFoundError before any file is
// created. Existing output files are overwritten; repeated runs with the same
// inputs produce byte-identical files.
func Run(opts Options, out io.Writer) (*Result, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", opts.Count)
	}

	tmpl, err := prompt.Load(opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	meta, err := prompt.ParseMeta(tmpl)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		if err := prompt.CheckRequires(meta.Requires, opts.BuildVersion); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", opts.OutDir, err)
	}

	result := &Result{}

	fmt.Fprintln(out, PromptsHeader)
	for id := 1; id <= opts.Count; id++ {
		path := filepath.Join(opts.OutDir, FileName(id))
		if err := os.WriteFile(path, []byte(prompt.Render(tmpl, id)), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintln(out, path)
		result.Files = append(result.Files, path)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, InvocationsHeader)
	for id := 1; id <= opts.Count; id++ {
		path := filepath.Join(opts.OutDir, FileName(id))
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading back %s: %w", path, err)
		}
		fmt.Fprintln(out, Descriptor(id, string(content), meta))
	}

	return result, nil
}

// Descriptor builds one single-line Task invocation embedding the agent's
// description, its full rendered prompt text (Go-quoted so newlines stay on
// one line), and the capability and command tags. Front matter overrides the
// defaults field by field; a placeholder in the description is rendered with
// the agent index.
func Descriptor(id int, promptText string, meta *prompt.Meta) string {
	description := defaultDescription
	subagentType := defaultSubagentType
	command := defaultCommand

	if meta != nil {
		if meta.Description != "" {
			description = meta.Description
		}
		if meta.SubagentType != "" {
			subagentType = meta.SubagentType
		}
		if meta.Command != "" {
			command = meta.Command
		}
	}

	return fmt.Sprintf("Task(description=%q, prompt=%q, subagent_type=%q, command=%q)",
		prompt.Render(description, id), promptText, subagentType, command)
}
