// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import "slices"

// Names of the context entries shared between the command layer, input
// completion, and the pipeline. Defined once so the prompt choices, the
// factories, and the projection can never drift apart.
const (
	OptionName           = "name"
	OptionDirectory      = "directory"
	OptionPackageManager = "packageManager"
	OptionCollection     = "collection"
	OptionSkipInstall    = "skipInstall"
	OptionSkipGit        = "skipGit"
	OptionDryRun         = "dryRun"
)

// SchematicOption is one flattened option handed to a collection.
type SchematicOption struct {
	Name  string
	Value any
}

// ProjectOptions flattens ctx into the ordered option list a collection
// consumes. Names in excluded are control-only and dropped; entries that
// are still unresolved are dropped silently, because absence means the
// collection applies its own default. Output order equals insertion
// order so generation invocations are reproducible.
func ProjectOptions(ctx *Context, excluded ...string) []SchematicOption {
	var options []SchematicOption
	ctx.Each(func(e Entry) {
		if e.Value == nil || slices.Contains(excluded, e.Name) {
			return
		}
		options = append(options, SchematicOption{Name: e.Name, Value: e.Value})
	})
	return options
}
