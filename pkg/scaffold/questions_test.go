// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"errors"
	"testing"
)

// fakePrompter records every Ask session and answers from a fixed map.
type fakePrompter struct {
	answers  map[string]any
	err      error
	sessions [][]Question
}

func (f *fakePrompter) Ask(questions []Question) (map[string]any, error) {
	f.sessions = append(f.sessions, questions)
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]any{}
	for _, q := range questions {
		if v, ok := f.answers[q.Name]; ok {
			out[q.Name] = v
		}
	}
	return out, nil
}

func TestComplete_AllResolved_NeverPrompts(t *testing.T) {
	p := &fakePrompter{}
	input := NewContext(Entry{Name: OptionName, Value: "demo"})
	options := NewContext(Entry{Name: OptionPackageManager, Value: "npm"})

	if err := Complete(p, input, options); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(p.sessions) != 0 {
		t.Errorf("prompted %d times, want 0", len(p.sessions))
	}
}

func TestComplete_FillsMissingName(t *testing.T) {
	p := &fakePrompter{answers: map[string]any{OptionName: "answered-app"}}
	input := NewContext(Entry{Name: OptionName})
	options := NewContext(Entry{Name: OptionPackageManager, Value: "yarn"})

	if err := Complete(p, input, options); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got := input.Get(OptionName).Value; got != "answered-app" {
		t.Errorf("name = %v, want answered-app", got)
	}
	if len(p.sessions) != 1 {
		t.Fatalf("prompted %d times, want 1", len(p.sessions))
	}
	q := p.sessions[0][0]
	if q.Name != OptionName || q.Default != defaultProjectName {
		t.Errorf("name question = %+v, want name with default %q", q, defaultProjectName)
	}
}

func TestComplete_ManagerChoicesMatchFactorySet(t *testing.T) {
	p := &fakePrompter{answers: map[string]any{OptionPackageManager: "pnpm"}}
	input := NewContext(Entry{Name: OptionName, Value: "demo"})
	options := NewContext(Entry{Name: OptionPackageManager})

	if err := Complete(p, input, options); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(p.sessions) != 1 {
		t.Fatalf("prompted %d times, want 1", len(p.sessions))
	}
	choices := p.sessions[0][0].Choices
	if len(choices) != len(PackageManagerNames) {
		t.Fatalf("choices = %v, want %v", choices, PackageManagerNames)
	}
	for i, name := range PackageManagerNames {
		if choices[i] != name {
			t.Errorf("choice %d = %q, want %q", i, choices[i], name)
		}
		// Every offered choice must pass the factory.
		if _, err := CreatePackageManager(choices[i]); err != nil {
			t.Errorf("prompt offers %q but the factory rejects it: %v", choices[i], err)
		}
	}
	if got := options.Get(OptionPackageManager).Value; got != "pnpm" {
		t.Errorf("packageManager = %v, want pnpm", got)
	}
}

func TestComplete_TwoOrderedSessions(t *testing.T) {
	p := &fakePrompter{answers: map[string]any{
		OptionName:           "demo",
		OptionPackageManager: "npm",
	}}
	input := NewContext(Entry{Name: OptionName})
	options := NewContext(Entry{Name: OptionPackageManager})

	if err := Complete(p, input, options); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(p.sessions) != 2 {
		t.Fatalf("prompted %d sessions, want 2", len(p.sessions))
	}
	if p.sessions[0][0].Name != OptionName {
		t.Errorf("first session asked %q, want the project name", p.sessions[0][0].Name)
	}
	if p.sessions[1][0].Name != OptionPackageManager {
		t.Errorf("second session asked %q, want the package manager", p.sessions[1][0].Name)
	}
}

func TestComplete_PromptFailureAborts(t *testing.T) {
	wantErr := errors.New("not a terminal")
	p := &fakePrompter{err: wantErr}
	input := NewContext(Entry{Name: OptionName})
	options := NewContext(Entry{Name: OptionPackageManager, Value: "npm"})

	err := Complete(p, input, options)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Complete err = %v, want wrapped %v", err, wantErr)
	}
	if input.Get(OptionName).Value != nil {
		t.Error("failed prompt must not write a value back")
	}
}

func TestWriteBack_LeavesUnansweredUnresolved(t *testing.T) {
	c := NewContext(
		Entry{Name: "a"},
		Entry{Name: "b", Value: "kept"},
		Entry{Name: "c"},
	)
	writeBack(c, map[string]any{"a": "filled", "b": "ignored"})

	if got := c.Get("a").Value; got != "filled" {
		t.Errorf("a = %v, want filled", got)
	}
	if got := c.Get("b").Value; got != "kept" {
		t.Errorf("b = %v, want kept (resolved entries are never clobbered)", got)
	}
	if got := c.Get("c").Value; got != nil {
		t.Errorf("c = %v, want unresolved", got)
	}
}
