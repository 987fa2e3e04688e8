// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/scaffold"
)

// osExit is swapped in tests; the creation pipeline ends with an
// explicit zero exit rather than a fall-through.
var osExit = os.Exit

var reporter = scaffold.NewReporter()

var rootCmd = &cobra.Command{
	Use:           "stencil",
	Short:         "A project generation tool for TypeScript services",
	Long:          "stencil scaffolds, builds, and maintains TypeScript projects from pluggable schematics collections.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	registerNewCommand(rootCmd)
	registerBuildCommand(rootCmd)
}

// Execute runs the root command. Failures are printed with the
// standard error prefix before the caller exits non-zero.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reporter.Errorf("%v", err)
	}
	return err
}
