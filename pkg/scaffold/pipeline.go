// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import "fmt"

// StepResult records whether a pipeline step ran and how it ended. The
// orchestrator applies the fatal / logged-and-continue policy on these
// results in one place instead of scattering error suppression.
type StepResult struct {
	Attempted bool
	Succeeded bool
	Err       error
}

// attempted wraps a step's error into a StepResult.
func attempted(err error) StepResult {
	return StepResult{Attempted: true, Succeeded: err == nil, Err: err}
}

// controlOptions are meaningful to the pipeline but never forwarded to
// the collection.
var controlOptions = []string{
	OptionSkipInstall,
	OptionSkipGit,
	OptionDryRun,
	OptionCollection,
}

// Pipeline drives project creation: complete inputs, generate files,
// install dependencies, initialize version control, seed the ignore
// file, and report. Generation failure is fatal; the steps after it
// tolerate failure so a user without network access or git installed
// still gets generated files. There is no rollback of partial effects.
type Pipeline struct {
	Prompter Prompter
	Git      Git
	Reporter *Reporter

	// Factory indirection so tests can substitute fakes without
	// spawning processes.
	CollectionFactory func(name string) (Collection, error)
	ManagerFactory    func(name string) (PackageManager, error)
}

// NewPipeline wires the production collaborators.
func NewPipeline(r *Reporter) *Pipeline {
	return &Pipeline{
		Prompter:          NewPrompter(),
		Git:               NewGit(),
		Reporter:          r,
		CollectionFactory: CreateCollection,
		ManagerFactory:    CreatePackageManager,
	}
}

// Run executes the creation pipeline for one invocation. input holds
// the positional inputs (the project name); options holds the flag
// inputs. Both are mutated in place during completion. A non-nil error
// means the run failed before producing a usable project and the caller
// must exit non-zero.
func (p *Pipeline) Run(input, options *Context) error {
	// Step 1: fill missing name and strategy inputs.
	if err := Complete(p.Prompter, input, options); err != nil {
		return err
	}

	nameEntry, err := input.GetRequired(OptionName)
	if err != nil {
		return err
	}
	name := fmt.Sprint(nameEntry.Value)

	directory := options.String(OptionDirectory)
	if directory == "" {
		directory = name
	}
	dryRun := options.Bool(OptionDryRun)
	logf("pipeline: name=%q directory=%q dryRun=%v", name, directory, dryRun)

	// Resolve both strategies up front: an invalid identifier must fail
	// before any side effect, not midway through generation.
	collection, err := p.CollectionFactory(options.String(OptionCollection))
	if err != nil {
		return err
	}
	manager, err := p.ManagerFactory(options.String(OptionPackageManager))
	if err != nil {
		return err
	}

	// Step 2: generation. Flags outrank positional inputs when both set
	// the same name, so the input context is the base and the options
	// context is the overlay.
	merged := input.Clone()
	merged.Overlay(options)
	if gen := attempted(collection.Execute(schematicApplication, ProjectOptions(merged, controlOptions...))); !gen.Succeeded {
		return fmt.Errorf("generating project %q: %w", name, gen.Err)
	}
	p.Reporter.Infof("Project files generated in ./%s", directory)

	// Step 3: dependency install (non-fatal).
	p.runInstall(manager, directory, options)

	// Steps 4 and 5: version control and ignore file (non-fatal). The
	// ignore file is only considered when init was attempted at all.
	if vcs := p.runGitInit(directory, options); vcs.Attempted {
		p.runIgnoreFile(directory)
	}

	// Step 6: completion notice.
	if dryRun {
		p.Reporter.Infof("Dry run complete: no dependencies were installed and no repository was created.")
	} else {
		p.Reporter.Successf("Project %q is ready. Get started with: cd %s", name, directory)
	}
	return nil
}

func (p *Pipeline) runInstall(manager PackageManager, dir string, options *Context) StepResult {
	if options.Bool(OptionSkipInstall) {
		logf("pipeline: install skipped by flag")
		return StepResult{}
	}
	if options.Bool(OptionDryRun) {
		p.Reporter.Infof("Dry run: skipping %s install.", manager.Name())
		return StepResult{}
	}
	res := attempted(manager.Install(dir, manager.Name()))
	if !res.Succeeded {
		p.Reporter.Errorf("Dependency installation failed: %v", res.Err)
		p.Reporter.Infof("You can install dependencies later by running %q inside ./%s.",
			manager.Name()+" install", dir)
	}
	return res
}

func (p *Pipeline) runGitInit(dir string, options *Context) StepResult {
	if options.Bool(OptionDryRun) || options.Bool(OptionSkipGit) {
		logf("pipeline: git init skipped")
		return StepResult{}
	}
	res := attempted(p.Git.Init(dir))
	if !res.Succeeded {
		p.Reporter.Warnf("Repository initialization failed: %v", res.Err)
	}
	return res
}

func (p *Pipeline) runIgnoreFile(dir string) StepResult {
	created, err := EnsureIgnoreFile(dir)
	res := attempted(err)
	if err != nil {
		p.Reporter.Warnf("Could not write %s: %v", ignoreFileName, err)
	} else if created {
		logf("pipeline: seeded %s in %s", ignoreFileName, dir)
	}
	return res
}
