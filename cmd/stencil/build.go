// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/scaffold"
)

const (
	configFlag      = "config"
	tsconfigFlag    = "tsconfig"
	watchFlag       = "watch"
	watchAssetsFlag = "watch-assets"
	tscFlag         = "tsc"
	webpackFlag     = "webpack"
	builderFlag     = "builder"
	typeCheckFlag   = "type-check"
)

func registerBuildCommand(root *cobra.Command) {
	var (
		configPath  string
		tsconfig    string
		watch       bool
		watchAssets bool
		useTsc      bool
		useWebpack  bool
		builderName string
		typeCheck   bool
	)

	cmd := &cobra.Command{
		Use:   "build [app]",
		Short: "Compile an application",
		Long:  "Compiles the project with the configured builder (tsc, webpack, or swc). Flag validation runs before any compiler is invoked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := configPath
			if cfgPath == "" {
				cfgPath = scaffold.DefaultConfigFile
			}
			cfg, err := scaffold.LoadConfig(cfgPath)
			if err != nil {
				return err
			}

			opts := scaffold.BuildOptions{
				ConfigPath:   configPath,
				TsConfigPath: tsconfig,
				SourceRoot:   cfg.SourceRoot,
				OutDir:       cfg.Compiler.OutDir,
				Watch:        watch,
				WatchAssets:  watchAssets,
				Tsc:          useTsc,
				Webpack:      useWebpack,
				Builder:      builderName,
			}
			if len(args) > 0 {
				opts.App = args[0]
			}
			if opts.TsConfigPath == "" {
				opts.TsConfigPath = cfg.Compiler.TsConfigPath
			}
			// Explicit builder flags outrank the project configuration.
			if opts.Builder == "" && !useTsc && !useWebpack {
				opts.Builder = cfg.Compiler.Builder
			}
			if cmd.Flags().Changed(typeCheckFlag) {
				opts.TypeCheck = &typeCheck
			} else {
				opts.TypeCheck = cfg.Compiler.TypeCheck
			}

			// Validation precedes every side effect, including the
			// delete-out-dir cleanup.
			if err := opts.Normalize(reporter); err != nil {
				return err
			}
			builder, err := scaffold.CreateBuilder(opts.Builder)
			if err != nil {
				return err
			}

			run := func() error {
				if cfg.Compiler.DeleteOutDir {
					if err := os.RemoveAll(cfg.Compiler.OutDir); err != nil {
						return fmt.Errorf("clearing %s: %w", cfg.Compiler.OutDir, err)
					}
				}
				return builder.Run(opts)
			}

			if err := run(); err != nil {
				if !opts.Watch {
					return err
				}
				// Watch mode survives a failed initial build.
				reporter.Errorf("Build failed: %v", err)
			}

			if opts.Watch {
				w := &scaffold.Watcher{
					Root:        cfg.SourceRoot,
					OutDir:      cfg.Compiler.OutDir,
					Assets:      cfg.Compiler.Assets,
					WatchAssets: opts.WatchAssets,
					Rebuild:     run,
					Reporter:    reporter,
				}
				return w.Run(nil)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", "path to the project configuration file (default stencil.yaml)")
	cmd.Flags().StringVar(&tsconfig, tsconfigFlag, "", "path to the tsconfig file used by tsc builds")
	cmd.Flags().BoolVarP(&watch, watchFlag, "w", false, "rebuild on source changes")
	cmd.Flags().BoolVar(&watchAssets, watchAssetsFlag, false, "also mirror configured asset files into the output directory while watching")
	cmd.Flags().BoolVar(&useTsc, tscFlag, false, "build with the tsc compiler (overrides --webpack)")
	cmd.Flags().BoolVar(&useWebpack, webpackFlag, false, "build with the webpack bundler")
	cmd.Flags().StringVarP(&builderName, builderFlag, "b", "", "builder to use (tsc, webpack, swc)")
	cmd.Flags().BoolVar(&typeCheck, typeCheckFlag, false, "run type checking alongside swc builds")

	root.AddCommand(cmd)
}
