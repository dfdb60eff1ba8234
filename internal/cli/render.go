package cli

import (
	"fmt"

	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	renderID       int
	renderTemplate string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one agent's rendered prompt",
	Long: `Render the template for a single agent index and print the result to
stdout, without writing any files. Useful for previewing what an agent
will receive before spawning the full swarm.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderID, "id", 0, "Agent index (1-based)")
	renderCmd.Flags().StringVar(&renderTemplate, "template", prompt.DefaultPath, "Template path with {N} placeholder")
	_ = renderCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderID < 1 {
		return fmt.Errorf("agent id must be >= 1, got %d", renderID)
	}

	tmpl, err := prompt.Load(renderTemplate)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), prompt.Render(tmpl, renderID))
	return nil
}
