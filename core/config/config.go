package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/epochlab/protopatch/core/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Suffix    string  `yaml:"suffix"`
	Recursive bool    `yaml:"recursive"`
	Watch     Watch   `yaml:"watch"`
	Package   Package `yaml:"package"`
}

type Watch struct {
	DebounceMs int      `yaml:"debounce_ms"`
	Exclude    []string `yaml:"exclude"`
}

// Package holds the metadata written into the generated setup.py.
type Package struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Email       string `yaml:"email"`
	URL         string `yaml:"url"`
}

func Default() *Config {
	return &Config{
		Suffix: "_pb2.py",
		Watch: Watch{
			DebounceMs: 500,
			Exclude:    []string{".git", "__pycache__", "build", "dist"},
		},
		Package: Package{
			Name:        "epoch-protos",
			Version:     "1.0.0",
			Description: "Protocol Buffer definitions for EpochFolio models",
			Author:      "EpochLab",
			Email:       "dev@epochlab.ai",
			URL:         "https://github.com/epochlab/epoch-protos",
		},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	return LoadFrom(filepath.Join(wd, "protopatch.yaml"))
}

func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}
