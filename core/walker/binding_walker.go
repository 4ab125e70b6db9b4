package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/epochlab/protopatch/core/logger"
)

// BindingWalker discovers directories that hold generated binding files,
// used by the recursive fix mode.
type BindingWalker struct {
	Suffix  string
	Exclude []string
}

func NewBindingWalker(suffix string, exclude []string) *BindingWalker {
	return &BindingWalker{
		Suffix:  suffix,
		Exclude: exclude,
	}
}

// Walk returns every directory under root (root included) that contains at
// least one candidate file, skipping excluded subtrees.
func (w *BindingWalker) Walk(root string) ([]string, error) {
	var dirs []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if relPath != "." && w.isExcluded(relPath) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		has, err := w.hasBindings(path)
		if err != nil {
			return err
		}
		if has {
			logger.Debug("Found bindings directory: %s", path)
			dirs = append(dirs, path)
		}

		return nil
	})

	return dirs, err
}

func (w *BindingWalker) hasBindings(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), w.Suffix) {
			return true, nil
		}
	}
	return false, nil
}

func (w *BindingWalker) isExcluded(relPath string) bool {
	relPath = filepath.Clean(relPath)

	for _, exclude := range w.Exclude {
		exclude = filepath.Clean(exclude)

		if relPath == exclude || filepath.Base(relPath) == exclude {
			return true
		}
		if strings.HasPrefix(relPath, exclude+string(filepath.Separator)) {
			return true
		}
	}

	return false
}
