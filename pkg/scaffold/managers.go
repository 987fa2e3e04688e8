// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"fmt"
	"os"
	"os/exec"
)

// Package manager binary names.
const (
	binNpm  = "npm"
	binYarn = "yarn"
	binPnpm = "pnpm"
)

// PackageManagerNames is the closed set of supported package managers.
// The interactive prompt offers exactly this list and
// CreatePackageManager accepts exactly this list; the two must never
// diverge.
var PackageManagerNames = []string{binNpm, binYarn, binPnpm}

// PackageManager installs dependencies into a generated project.
type PackageManager interface {
	Name() string
	Install(dir, hint string) error
}

// CreatePackageManager resolves a manager name to its runner.
// Validation happens before any process is spawned; there is no default
// because completion guarantees a value by the time the factory runs.
func CreatePackageManager(name string) (PackageManager, error) {
	return resolveStrategy("package manager", name, "", map[string]PackageManager{
		binNpm:  managerRunner{bin: binNpm},
		binYarn: managerRunner{bin: binYarn},
		binPnpm: managerRunner{bin: binPnpm},
	}, PackageManagerNames)
}

// managerRunner shells out to a package manager binary. It holds no
// state beyond the binary name and is safe to reuse.
type managerRunner struct {
	bin string
}

func (m managerRunner) Name() string { return m.bin }

// Install runs "<manager> install" inside dir, streaming output to the
// terminal. hint names the manager in the wrapped error so the caller's
// log line identifies which tool failed.
func (m managerRunner) Install(dir, hint string) error {
	logf("install: %s install (dir=%s)", m.bin, dir)
	cmd := exec.Command(m.bin, "install")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s install: %w", hint, err)
	}
	logf("install: done")
	return nil
}
