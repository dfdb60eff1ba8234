package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter prompt template",
	Long: `Write the built-in starter template to ` + prompt.DefaultPath + ` in the
current directory, creating .agents/ if needed. The starter template uses the
{N} placeholder and is ready for 'swarmgen spawn'.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing template")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	path := prompt.CanonicalPath(cwd)
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("template already exists: %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(prompt.Default()), 0644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter template to %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit it, then run 'swarmgen spawn' to generate agent prompts.")
	return nil
}
