// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// Question describes one interactive input: free-text entry when
// Choices is empty, otherwise a single choice from the list. Name ties
// the answer back to the context entry it resolves.
type Question struct {
	Name    string
	Message string
	Default string
	Choices []string
}

// Prompter collects answers for an ordered question list, keyed by
// question name. Implementations must preserve the name association;
// the write-back step matches answers to entries by name alone.
type Prompter interface {
	Ask(questions []Question) (map[string]any, error)
}

// NewPrompter returns the terminal-backed prompter.
func NewPrompter() Prompter { return surveyPrompter{} }

type surveyPrompter struct{}

func (surveyPrompter) Ask(questions []Question) (map[string]any, error) {
	qs := make([]*survey.Question, 0, len(questions))
	for _, q := range questions {
		var prompt survey.Prompt
		if len(q.Choices) > 0 {
			prompt = &survey.Select{Message: q.Message, Options: q.Choices}
		} else {
			prompt = &survey.Input{Message: q.Message, Default: q.Default}
		}
		qs = append(qs, &survey.Question{Name: q.Name, Prompt: prompt})
	}
	answers := map[string]any{}
	if err := survey.Ask(qs, &answers); err != nil {
		// Non-interactive terminals and interrupts land here; required
		// inputs cannot be resolved, so the caller aborts.
		return nil, fmt.Errorf("collecting input: %w", err)
	}
	return answers, nil
}

// defaultProjectName seeds the name prompt.
const defaultProjectName = "stencil-app"

// Complete fills unresolved inputs by prompting. The name prompt and
// the package-manager prompt run as two separate ordered sessions,
// never concurrently: a later session may depend on an earlier answer.
// The package-manager choices are PackageManagerNames, the same set the
// factory validates against.
func Complete(p Prompter, input, options *Context) error {
	if input.Get(OptionName).Value == nil {
		logf("complete: prompting for project name")
		answers, err := p.Ask([]Question{{
			Name:    OptionName,
			Message: "What name would you like to use for the new project?",
			Default: defaultProjectName,
		}})
		if err != nil {
			return err
		}
		writeBack(input, answers)
	}

	if options.Get(OptionPackageManager).Value == nil {
		logf("complete: prompting for package manager")
		answers, err := p.Ask([]Question{{
			Name:    OptionPackageManager,
			Message: "Which package manager would you like to use?",
			Choices: PackageManagerNames,
		}})
		if err != nil {
			return err
		}
		writeBack(options, answers)
	}

	return nil
}

// writeBack overwrites still-unresolved entries with matching answers.
// Entries without a matching answer stay unresolved for downstream
// required reads to catch; resolved entries are never clobbered.
func writeBack(ctx *Context, answers map[string]any) {
	ctx.Each(func(e Entry) {
		if e.Value != nil {
			return
		}
		if v, ok := answers[e.Name]; ok {
			ctx.Set(Entry{Name: e.Name, Value: v})
		}
	})
}
