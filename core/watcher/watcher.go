package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/epochlab/protopatch/core/cache"
	"github.com/epochlab/protopatch/core/logger"
	"github.com/epochlab/protopatch/core/models"
	"github.com/fsnotify/fsnotify"
)

// BindingWatcher re-runs the import fixer whenever protoc regenerates
// bindings under the watched directory.
type BindingWatcher struct {
	FileWatcher *models.FileWatcher
	Suffix      string
}

func NewBindingWatcher(fw *models.FileWatcher, suffix string) *BindingWatcher {
	return &BindingWatcher{
		FileWatcher: fw,
		Suffix:      suffix,
	}
}

func (bw *BindingWatcher) Watch() error {
	if err := bw.addWatchersRecursively(bw.FileWatcher.RootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	if err := bw.FileWatcher.OnStart(); err != nil {
		logger.Error("Watcher.OnStart failed: %v", err)
	}

	for {
		select {
		case event, ok := <-bw.FileWatcher.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if bw.shouldExcludePath(event.Name) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					logger.Debug("Adding watcher for new directory: %s", event.Name)
					bw.FileWatcher.Watcher.Add(event.Name)
				}
			}

			if !strings.HasSuffix(event.Name, bw.Suffix) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Remove) {
				cache.GetCache().InvalidateFile(event.Name)
				logger.Debug("Invalidated cache for binding file: %s", event.Name)
			}

			bw.debounceFix()

		case err, ok := <-bw.FileWatcher.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (bw *BindingWatcher) debounceFix() {
	bw.FileWatcher.Mutex.Lock()
	defer bw.FileWatcher.Mutex.Unlock()

	if bw.FileWatcher.DebounceTimer != nil {
		bw.FileWatcher.DebounceTimer.Stop()
	}

	bw.FileWatcher.DebounceTimer = time.AfterFunc(bw.FileWatcher.Debounce, func() {
		logger.Debug("Binding changes detected, re-fixing...")
		if err := bw.FileWatcher.OnChange(); err != nil {
			logger.Error("Watcher.OnChange failed: %v", err)
		}
	})
}

func (bw *BindingWatcher) Close() error {
	bw.FileWatcher.Mutex.Lock()
	defer bw.FileWatcher.Mutex.Unlock()

	if bw.FileWatcher.DebounceTimer != nil {
		bw.FileWatcher.DebounceTimer.Stop()
	}

	if err := bw.FileWatcher.OnClose(); err != nil {
		logger.Error("Watcher.OnClose failed: %v", err)
	}

	return bw.FileWatcher.Watcher.Close()
}

func (bw *BindingWatcher) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(bw.FileWatcher.RootDir, path)
	if err != nil {
		return false
	}

	relPath = filepath.Clean(relPath)

	for _, excludePath := range bw.FileWatcher.ExcludePaths {
		excludePath = filepath.Clean(excludePath)

		if relPath == excludePath {
			return true
		}
		if strings.HasPrefix(relPath, excludePath+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func (bw *BindingWatcher) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path != root && bw.shouldExcludePath(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := bw.FileWatcher.Watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}
