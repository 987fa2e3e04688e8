// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
)

const binGit = "git"

// Git initializes version control for a generated project.
type Git interface {
	Init(dir string) error
}

// NewGit returns the runner backed by the git binary.
func NewGit() Git { return gitRunner{} }

type gitRunner struct{}

// cmdGit returns an exec.Cmd for git with cmd.Dir set to dir when dir
// is non-empty.
func cmdGit(dir string, arg ...string) *exec.Cmd {
	cmd := exec.Command(binGit, arg...)
	if dir != "" {
		cmd.Dir = dir
	}
	return cmd
}

func (gitRunner) Init(dir string) error {
	logf("git: init (dir=%s)", dir)
	if err := cmdGit(dir, "init").Run(); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// ignoreFileName is the ignore file seeded into new projects.
const ignoreFileName = ".gitignore"

// defaultIgnoreFile is the content written by EnsureIgnoreFile. It
// covers the artifacts the builders and package managers produce.
const defaultIgnoreFile = `# compiled output
/dist

# dependencies
/node_modules

# logs
*.log
npm-debug.log*
yarn-debug.log*
yarn-error.log*
pnpm-debug.log*

# editor state
.idea/
.vscode/
*.swp
`

// EnsureIgnoreFile writes the default ignore file into dir unless one
// already exists. The O_EXCL create makes the existence check and the
// write a single step, so user content is never overwritten even when
// something else creates the file concurrently. Returns whether a file
// was written.
func EnsureIgnoreFile(dir string) (bool, error) {
	path := filepath.Join(dir, ignoreFileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		logf("git: %s already exists, leaving it alone", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(defaultIgnoreFile); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	logf("git: wrote %s", path)
	return true, nil
}
