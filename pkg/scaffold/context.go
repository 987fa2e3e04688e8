// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import "fmt"

// Entry is one named command input. A nil Value means the input has not
// been resolved yet; completion or an overlay may fill it in later.
type Entry struct {
	Name  string
	Value any
}

// Context is an ordered, name-keyed store of command inputs. Insertion
// order is preserved for deterministic iteration; lookup is by name.
// A Context belongs to exactly one command invocation and is never
// shared across goroutines, so no locking is needed.
type Context struct {
	byName  map[string]int
	entries []Entry
}

// NewContext builds a Context from the given entries in order.
// Duplicate names collapse to the last value, keeping the position of
// the first occurrence.
func NewContext(entries ...Entry) *Context {
	c := &Context{byName: make(map[string]int)}
	for _, e := range entries {
		c.Add(e)
	}
	return c
}

// Add inserts an entry. When the name is already present the new value
// replaces the old one in place; duplicate keys are never observable.
func (c *Context) Add(e Entry) {
	if i, ok := c.byName[e.Name]; ok {
		c.entries[i] = e
		return
	}
	c.byName[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
}

// Get returns the entry for name. A name that was never added yields a
// zero entry, indistinguishable from an added-but-unresolved one;
// callers that must tell the two apart use GetRequired.
func (c *Context) Get(name string) Entry {
	if i, ok := c.byName[name]; ok {
		return c.entries[i]
	}
	return Entry{Name: name}
}

// GetRequired returns the entry for name, failing with a
// MissingInputError when the entry is absent or still unresolved.
func (c *Context) GetRequired(name string) (Entry, error) {
	i, ok := c.byName[name]
	if !ok || c.entries[i].Value == nil {
		return Entry{}, &MissingInputError{Name: name}
	}
	return c.entries[i], nil
}

// Set overwrites the value of an existing entry without changing its
// position. It reports whether an entry with that name existed.
func (c *Context) Set(e Entry) bool {
	i, ok := c.byName[e.Name]
	if !ok {
		return false
	}
	c.entries[i].Value = e.Value
	return true
}

// Overlay merges the entries of overrides into c. On a name collision
// the override entry wins. The operation is deliberately directional:
// call sites encode precedence by choosing which context is the
// receiver and which is the overlay.
func (c *Context) Overlay(overrides *Context) {
	if overrides == nil {
		return
	}
	for _, e := range overrides.entries {
		c.Add(e)
	}
}

// Each visits entries in insertion order. fn receives a copy; mutations
// go through Set.
func (c *Context) Each(fn func(e Entry)) {
	for _, e := range c.entries {
		fn(e)
	}
}

// Clone returns an independent copy with the same entries and order.
func (c *Context) Clone() *Context {
	return NewContext(c.entries...)
}

// Len returns the number of entries.
func (c *Context) Len() int {
	return len(c.entries)
}

// String returns the value of name rendered as a string, or "" when the
// entry is absent or unresolved.
func (c *Context) String(name string) string {
	e := c.Get(name)
	if e.Value == nil {
		return ""
	}
	return fmt.Sprint(e.Value)
}

// Bool returns the value of name as a bool. Absent, unresolved, or
// non-bool values read as false.
func (c *Context) Bool(name string) bool {
	v, ok := c.Get(name).Value.(bool)
	return ok && v
}
