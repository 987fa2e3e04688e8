// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
)

// Builder identifiers double as binary names.
const (
	BuilderTsc     = "tsc"
	BuilderWebpack = "webpack"
	BuilderSwc     = "swc"
)

// BuilderNames is the closed set of supported builders.
var BuilderNames = []string{BuilderTsc, BuilderWebpack, BuilderSwc}

// BuildOptions is the build command surface after flag parsing and
// before normalization. TypeCheck is a pointer so "flag not given" is
// distinguishable from an explicit false.
type BuildOptions struct {
	App          string
	ConfigPath   string
	TsConfigPath string
	SourceRoot   string
	OutDir       string
	Watch        bool
	WatchAssets  bool
	Tsc          bool
	Webpack      bool
	Builder      string
	TypeCheck    *bool
}

// typeCheckRequested handles the pointer default.
func (o *BuildOptions) typeCheckRequested() bool {
	return o.TypeCheck != nil && *o.TypeCheck
}

// Normalize applies the cross-flag rules and validates the builder
// selection. The legacy tsc flag forces the webpack flag off regardless
// of its own setting; an unknown builder aborts before any action. A
// type-check request with a builder other than swc draws an advisory
// warning but stays recorded, so downstream consumers see the flag.
func (o *BuildOptions) Normalize(r *Reporter) error {
	if o.Tsc {
		o.Webpack = false
	}
	if o.Builder == "" {
		if o.Webpack {
			o.Builder = BuilderWebpack
		} else {
			o.Builder = BuilderTsc
		}
	}
	if !slices.Contains(BuilderNames, o.Builder) {
		return &UnsupportedStrategyError{Kind: "builder", Name: o.Builder, Allowed: BuilderNames}
	}
	if o.typeCheckRequested() && o.Builder != BuilderSwc {
		r.Warnf("Type checking is handled by the swc builder; the %s builder records the flag but does not act on it.", o.Builder)
	}
	logf("build: normalized builder=%s watch=%v watchAssets=%v", o.Builder, o.Watch, o.WatchAssets)
	return nil
}

// Builder compiles a project from normalized build options.
type Builder interface {
	Name() string
	Run(opts BuildOptions) error
}

// CreateBuilder resolves a builder name to its runner. Normalize has
// already validated the name for the build command; the factory
// revalidates so other callers stay safe.
func CreateBuilder(name string) (Builder, error) {
	return resolveStrategy("builder", name, BuilderTsc, map[string]Builder{
		BuilderTsc:     tscRunner{},
		BuilderWebpack: webpackRunner{},
		BuilderSwc:     swcRunner{},
	}, BuilderNames)
}

// runBuildCmd streams a builder process to the terminal.
func runBuildCmd(bin string, arg ...string) error {
	logf("build: %s %v", bin, arg)
	cmd := exec.Command(bin, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", bin, err)
	}
	return nil
}

type tscRunner struct{}

func (tscRunner) Name() string { return BuilderTsc }

func (tscRunner) Run(opts BuildOptions) error {
	return runBuildCmd(BuilderTsc, "-p", opts.TsConfigPath)
}

type webpackRunner struct{}

func (webpackRunner) Name() string { return BuilderWebpack }

// Run invokes webpack, which discovers its own webpack.config.js.
func (webpackRunner) Run(opts BuildOptions) error {
	return runBuildCmd(BuilderWebpack)
}

type swcRunner struct{}

func (swcRunner) Name() string { return BuilderSwc }

// Run transpiles with swc and, when type checking was requested, runs a
// tsc --noEmit pass alongside. swc itself performs no type checks.
func (swcRunner) Run(opts BuildOptions) error {
	if err := runBuildCmd(BuilderSwc, opts.SourceRoot, "-d", opts.OutDir); err != nil {
		return err
	}
	if opts.typeCheckRequested() {
		return runBuildCmd(BuilderTsc, "--noEmit", "-p", opts.TsConfigPath)
	}
	return nil
}
