package fixer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/epochlab/protopatch/core/cache"
	"github.com/epochlab/protopatch/core/config"
	"github.com/epochlab/protopatch/core/logger"
	"github.com/epochlab/protopatch/core/models"
	"github.com/epochlab/protopatch/core/rewriter"
	"github.com/epochlab/protopatch/core/walker"
)

// Fixer runs the import rewrite over a bindings directory: it enumerates
// candidate files by suffix, applies the substitution, and reports which
// files changed. Recursion and cache use are opt-in; the one-shot fix
// command runs without the cache, watch mode runs with it.
type Fixer struct {
	cfg       *config.Config
	rw        *rewriter.Rewriter
	checkOnly bool
	useCache  bool
}

func New(cfg *config.Config) *Fixer {
	return &Fixer{
		cfg: cfg,
		rw:  rewriter.New(),
	}
}

func (f *Fixer) SetCheckOnly(checkOnly bool) {
	f.checkOnly = checkOnly
	f.rw.SetCheckOnly(checkOnly)
}

func (f *Fixer) SetUseCache(useCache bool) {
	f.useCache = useCache
}

// Run fixes dir (and, in recursive mode, every bindings directory below it).
// The directory check happens before any file is touched; a failure on an
// individual file aborts the rest of the batch. Changed filenames in the
// result are relative to dir.
func (f *Fixer) Run(dir string) (*models.RewriteResult, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	dirs := []string{dir}
	if f.cfg.Recursive {
		w := walker.NewBindingWalker(f.cfg.Suffix, f.cfg.Watch.Exclude)
		found, err := w.Walk(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory: %w", err)
		}
		dirs = found
	}

	result := &models.RewriteResult{Dir: dir}
	for _, d := range dirs {
		res, err := f.fixDir(dir, d)
		if err != nil {
			return nil, err
		}
		result.Merge(res)
	}

	if f.useCache {
		cache.GetCache().LogStats()
	}

	logger.Debug("Scanned %d files, fixed %d, skipped %d via cache",
		result.Scanned, len(result.Changed), result.Skipped)

	return result, nil
}

func (f *Fixer) fixDir(root, dir string) (*models.RewriteResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	result := &models.RewriteResult{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), f.cfg.Suffix) {
			continue
		}

		result.Scanned++
		path := filepath.Join(dir, entry.Name())

		if f.useCache {
			if _, ok := cache.GetCache().ValidateAndGet(path); ok {
				result.Skipped++
				continue
			}
		}

		changed, err := f.rw.RewriteFile(path)
		if err != nil {
			return nil, err
		}

		if changed {
			name, relErr := filepath.Rel(root, path)
			if relErr != nil {
				name = entry.Name()
			}
			result.Changed = append(result.Changed, name)
		}

		if f.useCache && !f.checkOnly {
			record := &models.RewriteRecord{Path: path, Changed: changed, FixedAt: time.Now()}
			if err := cache.GetCache().Set(path, record); err != nil {
				logger.Debug("Failed to cache record for %s: %v", path, err)
			}
		}
	}

	return result, nil
}
