// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"fmt"
	"strings"
)

// MissingInputError reports a required context read for a value that was
// never resolved. In normal flow completion prevents it; seeing one
// means a caller skipped completion for that input.
type MissingInputError struct {
	Name string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input %q", e.Name)
}

// UnsupportedStrategyError reports a strategy identifier outside its
// enumerated set. It is raised before any instantiation or I/O so the
// command can abort with no partial effects.
type UnsupportedStrategyError struct {
	Kind    string // "package manager", "collection", "builder"
	Name    string
	Allowed []string
}

func (e *UnsupportedStrategyError) Error() string {
	return fmt.Sprintf("unsupported %s %q (expected one of: %s)",
		e.Kind, e.Name, strings.Join(e.Allowed, ", "))
}
