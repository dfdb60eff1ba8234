package cli

import (
	"fmt"

	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
	"github.com/spf13/cobra"
)

var checkTemplate string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a prompt template",
	Long: `Validate a prompt template before spawning: the optional YAML front
matter is checked against the front matter schema, the requires constraint
is compared to this build's version, and a warning is printed when the
template body contains no {N} placeholder.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkTemplate, "template", prompt.DefaultPath, "Template path to validate")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	tmpl, err := prompt.Load(checkTemplate)
	if err != nil {
		return err
	}

	result, err := prompt.ValidateMeta(tmpl)
	if err != nil {
		return fmt.Errorf("validating front matter: %w", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "schema: %s\n", msg)
		}
		return fmt.Errorf("template front matter is invalid (%d issues)", len(result.Issues))
	}

	meta, err := prompt.ParseMeta(tmpl)
	if err != nil {
		return err
	}
	if meta != nil {
		if err := prompt.CheckRequires(meta.Requires, buildVersion); err != nil {
			return err
		}
	}

	if !prompt.HasPlaceholder(prompt.Body(tmpl)) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: template body contains no %s placeholder; all agents will receive identical prompts\n", prompt.Token)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", checkTemplate)
	return nil
}
