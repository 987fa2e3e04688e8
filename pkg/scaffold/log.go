// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"log"
	"os"
)

var debugEnabled = os.Getenv("STENCIL_DEBUG") != ""

// logf writes a debug line to stderr. Output is suppressed unless
// STENCIL_DEBUG is set; user-facing messages go through Reporter.
func logf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	log.Printf(format, args...)
}
