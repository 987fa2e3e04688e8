// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/scaffold"
)

const (
	directoryFlag      = "directory"
	dryRunFlag         = "dry-run"
	skipInstallFlag    = "skip-install"
	skipGitFlag        = "skip-git"
	packageManagerFlag = "package-manager"
	collectionFlag     = "collection"
)

// newPipeline is indirected so command tests can inject fakes.
var newPipeline = func() *scaffold.Pipeline {
	return scaffold.NewPipeline(reporter)
}

func registerNewCommand(root *cobra.Command) {
	var (
		directory      string
		dryRun         bool
		skipInstall    bool
		skipGit        bool
		packageManager string
		collectionName string
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Scaffold a new project",
		Long:  "Generates project files from a schematics collection, installs dependencies, and initializes a git repository. Missing inputs are collected interactively.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The name entry always exists; an omitted positional leaves
			// it unresolved so completion prompts for it.
			input := scaffold.NewContext(scaffold.Entry{Name: scaffold.OptionName})
			if len(args) > 0 {
				input.Set(scaffold.Entry{Name: scaffold.OptionName, Value: args[0]})
			}

			options := scaffold.NewContext(
				scaffold.Entry{Name: scaffold.OptionDirectory, Value: stringOrNil(directory)},
				scaffold.Entry{Name: scaffold.OptionDryRun, Value: dryRun},
				scaffold.Entry{Name: scaffold.OptionSkipInstall, Value: skipInstall},
				scaffold.Entry{Name: scaffold.OptionSkipGit, Value: skipGit},
				scaffold.Entry{Name: scaffold.OptionPackageManager, Value: stringOrNil(packageManager)},
				scaffold.Entry{Name: scaffold.OptionCollection, Value: stringOrNil(collectionName)},
			)

			if err := newPipeline().Run(input, options); err != nil {
				return err
			}
			osExit(0)
			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, directoryFlag, "d", "", "generate the project in the given directory instead of ./<name>")
	cmd.Flags().BoolVar(&dryRun, dryRunFlag, false, "report what would happen without installing dependencies or creating a repository")
	cmd.Flags().BoolVar(&skipInstall, skipInstallFlag, false, "skip dependency installation")
	cmd.Flags().BoolVarP(&skipGit, skipGitFlag, "g", false, "skip git repository initialization")
	cmd.Flags().StringVarP(&packageManager, packageManagerFlag, "p", "", "package manager to use (npm, yarn, pnpm); prompted when omitted")
	cmd.Flags().StringVarP(&collectionName, collectionFlag, "c", "", "schematics collection to generate from")

	root.AddCommand(cmd)
}

// stringOrNil turns an unset string flag into an unresolved entry value
// so completion and the collection defaults can tell it apart from an
// explicit value.
func stringOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
