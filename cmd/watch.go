package cmd

import (
	"fmt"
	"time"

	"github.com/epochlab/protopatch/core/cache"
	"github.com/epochlab/protopatch/core/config"
	"github.com/epochlab/protopatch/core/fixer"
	"github.com/epochlab/protopatch/core/logger"
	"github.com/epochlab/protopatch/core/models"
	"github.com/epochlab/protopatch/core/watcher"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Re-fix binding imports whenever protoc regenerates them",
	Long: `Watches a bindings directory and re-runs the import fix, debounced,
whenever binding files are created or rewritten. Files whose content has not
changed since the last pass are skipped via the file cache.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("watch called")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dir := args[0]
		f := fixer.New(cfg)
		f.SetUseCache(true)

		runFix := func() error {
			result, err := f.Run(dir)
			if err != nil {
				return err
			}
			for _, name := range result.Changed {
				fmt.Printf("Fixed imports in %s\n", name)
			}
			return nil
		}

		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		fw, err := models.NewFileWatcher(dir, cfg.Watch.Exclude, debounce)
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}

		fw.AddOnStartFunc(runFix)
		fw.AddOnChangeFunc(runFix)
		fw.AddOnCloseFunc(func() error {
			cache.GetCache().LogStats()
			return nil
		})

		bw := watcher.NewBindingWatcher(fw, cfg.Suffix)
		defer bw.Close()

		logger.Info("Watching %s for binding changes", dir)
		return bw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
