// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides the stencil CLI entrypoint.
//
// stencil scaffolds TypeScript projects: it merges flags, defaults, and
// interactive answers into an ordered input context, resolves the
// package manager, schematics collection, and builder by validated
// name, and drives the creation and build pipelines against them.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
