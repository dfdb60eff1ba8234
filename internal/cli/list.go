package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
	"github.com/lprior-repo/shitty-swarm-manager/internal/spawn"
	"github.com/spf13/cobra"
)

var (
	listOutDir string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated prompt files",
	Long:  `List the agent_NN.md files present in the output directory.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listOutDir, "out-dir", prompt.DefaultOutDir, "Directory to scan for generated prompts")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	files, err := spawn.Generated(listOutDir)
	if err != nil {
		return fmt.Errorf("listing generated prompts: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No generated prompts found.")
		return nil
	}

	if listJSON {
		data, err := json.MarshalIndent(files, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "AGENT\tPATH\tSIZE")
	for _, f := range files {
		fmt.Fprintf(w, "%d\t%s\t%d\n", f.ID, f.Path, f.Size)
	}
	return w.Flush()
}
