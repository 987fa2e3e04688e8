// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the project configuration filename. stencil new
// seeds it; stencil build reads it.
const DefaultConfigFile = "stencil.yaml"

// Config holds project-level settings for generated projects.
type Config struct {
	// Collection is the schematics collection used for generation
	// inside this project.
	Collection string `yaml:"collection"`

	// SourceRoot is the directory holding TypeScript sources
	// (default "src").
	SourceRoot string `yaml:"source_root"`

	// EntryFile is the entry module name without extension
	// (default "main").
	EntryFile string `yaml:"entry_file"`

	Compiler CompilerConfig `yaml:"compiler"`
}

// CompilerConfig configures the build command.
type CompilerConfig struct {
	// Builder selects the compiler: tsc, webpack, or swc (default tsc).
	Builder string `yaml:"builder"`

	// TypeCheck enables a tsc --noEmit pass when the swc builder runs.
	// Nil means unset, letting the command-line flag decide.
	TypeCheck *bool `yaml:"type_check,omitempty"`

	// OutDir is the compilation output directory (default "dist").
	OutDir string `yaml:"out_dir"`

	// TsConfigPath is the tsconfig used by tsc builds
	// (default "tsconfig.json").
	TsConfigPath string `yaml:"tsconfig_path"`

	// Assets lists doublestar glob patterns, relative to SourceRoot,
	// of non-source files mirrored into OutDir by watch-assets mode.
	Assets []string `yaml:"assets,omitempty"`

	// DeleteOutDir clears OutDir before each build.
	DeleteOutDir bool `yaml:"delete_out_dir"`
}

func (c *Config) applyDefaults() {
	if c.Collection == "" {
		c.Collection = DefaultCollection
	}
	if c.SourceRoot == "" {
		c.SourceRoot = "src"
	}
	if c.EntryFile == "" {
		c.EntryFile = "main"
	}
	if c.Compiler.Builder == "" {
		c.Compiler.Builder = BuilderTsc
	}
	if c.Compiler.OutDir == "" {
		c.Compiler.OutDir = "dist"
	}
	if c.Compiler.TsConfigPath == "" {
		c.Compiler.TsConfigPath = "tsconfig.json"
	}
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	var c Config
	c.applyDefaults()
	return c
}

// LoadConfig reads a project configuration file and returns it with
// defaults applied. A missing file yields the defaults so build works
// in projects that never committed a stencil.yaml.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logf("config: %s not found, using defaults", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}
