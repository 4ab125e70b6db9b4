/*
Copyright © 2025 EpochLab <dev@epochlab.ai>
*/
package cmd

import (
	"fmt"

	"github.com/epochlab/protopatch/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Protopatch",
	Long:  `Displays the version of Protopatch.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Protopatch %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
