/*
Copyright © 2025 EpochLab <dev@epochlab.ai>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/epochlab/protopatch/core/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "protopatch",
	Short: "Post-processing for generated protobuf bindings.",
	Long: `Protopatch keeps generated Python protobuf bindings packageable.
Protoc emits absolute imports between sibling _pb2 modules; protopatch
rewrites them to relative imports and scaffolds the package around them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if logfile == "" {
			return nil
		}
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open logfile %s: %w", logfile, err)
		}
		logger.AddWriterForAll(f)
		return nil
	},
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
