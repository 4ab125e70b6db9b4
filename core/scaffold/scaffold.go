package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/epochlab/protopatch/core/config"
	"github.com/epochlab/protopatch/core/logger"
)

// Scaffolder lays down the Python package skeleton around a bindings
// directory: a setup.py at the package root and an __init__.py inside the
// import package, named after the configured package with dashes
// normalized to underscores.
type Scaffolder struct {
	cfg   *config.Config
	force bool
}

func NewScaffolder(cfg *config.Config) *Scaffolder {
	return &Scaffolder{cfg: cfg}
}

func (s *Scaffolder) SetForce(force bool) {
	s.force = force
}

// ImportName is the Python import package derived from the distribution
// name ("epoch-protos" -> "epoch_protos").
func (s *Scaffolder) ImportName() string {
	return strings.ReplaceAll(s.cfg.Package.Name, "-", "_")
}

// Generate writes setup.py and <import package>/__init__.py under root,
// creating directories as needed. Existing files are left alone unless
// force is set.
func (s *Scaffolder) Generate(root string) error {
	if err := os.MkdirAll(filepath.Join(root, s.ImportName()), 0755); err != nil {
		return fmt.Errorf("failed to create package directory: %w", err)
	}

	data := struct {
		Package config.Package
	}{
		Package: s.cfg.Package,
	}

	files := []struct {
		path string
		tmpl string
	}{
		{filepath.Join(root, "setup.py"), setupPyTemplate},
		{filepath.Join(root, s.ImportName(), "__init__.py"), initPyTemplate},
	}

	for _, f := range files {
		if err := s.generateFile(f.path, f.tmpl, data); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scaffolder) generateFile(path, tmplText string, data interface{}) error {
	if _, err := os.Stat(path); err == nil && !s.force {
		logger.Debug("Skipping existing file: %s", path)
		return nil
	}

	tmpl, err := template.New(filepath.Base(path)).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse template for %s: %w", path, err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := tmpl.Execute(out, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	logger.Debug("Generated %s", path)
	return nil
}
