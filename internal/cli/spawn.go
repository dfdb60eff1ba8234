package cli

import (
	"fmt"

	"github.com/lprior-repo/shitty-swarm-manager/internal/config"
	"github.com/lprior-repo/shitty-swarm-manager/internal/prompt"
	"github.com/lprior-repo/shitty-swarm-manager/internal/spawn"
	"github.com/spf13/cobra"
)

var (
	spawnCount    int
	spawnTemplate string
	spawnOutDir   string
)

var spawnCmd = &cobra.Command{
	Use:   "spawn",
	Short: "Generate per-agent prompt files and Task invocations",
	Long: `Render one prompt file per agent from the template, substituting the {N}
placeholder with the agent's index, then print the generated paths followed
by one Task invocation per agent for the orchestrator to dispatch.

Flag defaults can be overridden in ~/.swarmgen/config.yaml (keys: count,
template, out_dir) or via SWARMGEN_* environment variables.`,
	RunE: runSpawn,
}

func init() {
	spawnCmd.Flags().IntVar(&spawnCount, "count", 12, "Number of agents to generate")
	spawnCmd.Flags().StringVar(&spawnTemplate, "template", prompt.DefaultPath, "Template path with {N} placeholder")
	spawnCmd.Flags().StringVar(&spawnOutDir, "out-dir", prompt.DefaultOutDir, "Directory for rendered prompt files")
	rootCmd.AddCommand(spawnCmd)
}

func runSpawn(cmd *cobra.Command, args []string) error {
	config.Load()

	// Explicit flags win; otherwise user config overrides the built-in defaults.
	if !cmd.Flags().Changed("count") && config.IsSet(config.KeyCount) {
		spawnCount = config.GetInt(config.KeyCount)
	}
	if !cmd.Flags().Changed("template") && config.Get(config.KeyTemplate) != "" {
		spawnTemplate = config.Get(config.KeyTemplate)
	}
	if !cmd.Flags().Changed("out-dir") && config.Get(config.KeyOutDir) != "" {
		spawnOutDir = config.Get(config.KeyOutDir)
	}

	opts := spawn.Options{
		Count:        spawnCount,
		TemplatePath: spawnTemplate,
		OutDir:       spawnOutDir,
		BuildVersion: buildVersion,
	}

	if _, err := spawn.Run(opts, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("spawning prompts: %w", err)
	}
	return nil
}
