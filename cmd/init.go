/*
Copyright © 2025 EpochLab <dev@epochlab.ai>
*/
package cmd

import (
	"fmt"

	"github.com/epochlab/protopatch/core/config"
	"github.com/epochlab/protopatch/core/logger"
	"github.com/epochlab/protopatch/core/scaffold"
	"github.com/spf13/cobra"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init <directory>",
	Short: "Scaffold the Python package around a bindings directory",
	Long: `Creates the packaging files for an installable distribution of the
generated bindings: a setup.py at the target root and an __init__.py inside
the import package. Package metadata comes from protopatch.yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dir := args[0]
		s := scaffold.NewScaffolder(cfg)
		s.SetForce(force)

		if err := s.Generate(dir); err != nil {
			return fmt.Errorf("failed to scaffold package: %w", err)
		}

		fmt.Printf("Scaffolded %s in %s\n", cfg.Package.Name, dir)
		fmt.Printf("Next Steps:\n")
		fmt.Printf("  - protoc --python_out=%s/%s <schemas>\n", dir, s.ImportName())
		fmt.Printf("  - protopatch fix %s/%s\n", dir, s.ImportName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
