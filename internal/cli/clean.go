package cli

import (
	"fmt"

	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
	"github.com/lprior-repo/shitty-swarm-manager/internal/spawn"
	"github.com/spf13/cobra"
)

var cleanOutDir string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated prompt files",
	Long:  `Delete the agent_NN.md files from the output directory. Other files are left alone.`,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanOutDir, "out-dir", prompt.DefaultOutDir, "Directory holding generated prompts")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	removed, err := spawn.Clean(cleanOutDir)
	if err != nil {
		return fmt.Errorf("cleaning generated prompts: %w", err)
	}

	if removed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clean.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d generated prompt file(s) from %s\n", removed, cleanOutDir)
	return nil
}
