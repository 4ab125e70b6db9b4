/*
Copyright © 2025 EpochLab <dev@epochlab.ai>
*/
package cmd

import (
	"fmt"

	"github.com/epochlab/protopatch/core/config"
	"github.com/epochlab/protopatch/core/fixer"
	"github.com/epochlab/protopatch/core/logger"
	"github.com/spf13/cobra"
)

var (
	check     bool
	recursive bool
)

var fixCmd = &cobra.Command{
	Use:   "fix <directory>",
	Short: "Rewrite absolute binding imports to relative imports",
	Long: `Rewrites module-scope "import x_pb2 as ..." statements in generated
binding files to "from . import x_pb2 as ..." so the directory works as a
Python package. Only files matching the binding suffix are touched, and the
rewrite is idempotent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("fix called")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if recursive {
			cfg.Recursive = true
		}

		f := fixer.New(cfg)
		f.SetCheckOnly(check)

		result, err := f.Run(args[0])
		if err != nil {
			return err
		}

		for _, name := range result.Changed {
			if check {
				fmt.Printf("Would fix imports in %s\n", name)
			} else {
				fmt.Printf("Fixed imports in %s\n", name)
			}
		}

		if check && len(result.Changed) > 0 {
			return fmt.Errorf("%d file(s) need import fixes", len(result.Changed))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().BoolVar(&check, "check", false, "Report files that would change without writing")
	fixCmd.Flags().BoolVar(&recursive, "recursive", false, "Fix every bindings directory under the target")
}
