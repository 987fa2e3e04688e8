// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	errorPrefix  = color.New(color.FgRed, color.Bold).Sprint("ERROR")
	warnPrefix   = color.New(color.FgYellow).Sprint("WARN")
	successStyle = color.New(color.FgGreen)
)

// Reporter prints user-facing messages. Failures carry fixed prefixes
// on stderr so scripted callers can grep for them.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// NewReporter returns a Reporter bound to the process streams.
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stdout, Err: os.Stderr}
}

func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

func (r *Reporter) Successf(format string, args ...any) {
	successStyle.Fprintf(r.Out, format+"\n", args...)
}

func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.Err, "%s %s\n", warnPrefix, fmt.Sprintf(format, args...))
}

func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintf(r.Err, "%s %s\n", errorPrefix, fmt.Sprintf(format, args...))
}
