// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"errors"
	"strings"
	"testing"
)

// assertUnsupported checks the typed error and its enumerated set.
func assertUnsupported(t *testing.T, err error, kind string, allowed []string) {
	t.Helper()
	var unsupported *UnsupportedStrategyError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error %v is not an UnsupportedStrategyError", err)
	}
	if unsupported.Kind != kind {
		t.Errorf("Kind = %q, want %q", unsupported.Kind, kind)
	}
	for _, name := range allowed {
		if !strings.Contains(unsupported.Error(), name) {
			t.Errorf("error %q does not list %q", unsupported.Error(), name)
		}
	}
}

func TestCreatePackageManager_AcceptsWholeSet(t *testing.T) {
	for _, name := range PackageManagerNames {
		m, err := CreatePackageManager(name)
		if err != nil {
			t.Errorf("CreatePackageManager(%q): %v", name, err)
			continue
		}
		if m.Name() != name {
			t.Errorf("manager name = %q, want %q", m.Name(), name)
		}
	}
}

func TestCreatePackageManager_RejectsUnknown(t *testing.T) {
	for _, name := range []string{"bower", "cargo", "NPM", ""} {
		_, err := CreatePackageManager(name)
		if err == nil {
			t.Errorf("CreatePackageManager(%q) succeeded, want error", name)
			continue
		}
		assertUnsupported(t, err, "package manager", PackageManagerNames)
	}
}

func TestCreateCollection_AcceptsWholeSet(t *testing.T) {
	for _, name := range CollectionNames {
		c, err := CreateCollection(name)
		if err != nil {
			t.Errorf("CreateCollection(%q): %v", name, err)
		} else if c == nil {
			t.Errorf("CreateCollection(%q) returned nil implementation", name)
		}
	}
}

func TestCreateCollection_EmptyNameUsesDefault(t *testing.T) {
	c, err := CreateCollection("")
	if err != nil {
		t.Fatalf("CreateCollection(\"\"): %v", err)
	}
	runner, ok := c.(schematicRunner)
	if !ok {
		t.Fatalf("default collection is %T, want schematicRunner", c)
	}
	if runner.collection != DefaultCollection {
		t.Errorf("default collection = %q, want %q", runner.collection, DefaultCollection)
	}
}

func TestCreateCollection_RejectsUnknown(t *testing.T) {
	_, err := CreateCollection("@acme/schematics")
	if err == nil {
		t.Fatal("expected error for unknown collection")
	}
	assertUnsupported(t, err, "collection", CollectionNames)
}

func TestCreateBuilder_AcceptsWholeSet(t *testing.T) {
	for _, name := range BuilderNames {
		b, err := CreateBuilder(name)
		if err != nil {
			t.Errorf("CreateBuilder(%q): %v", name, err)
			continue
		}
		if b.Name() != name {
			t.Errorf("builder name = %q, want %q", b.Name(), name)
		}
	}
}

func TestCreateBuilder_RejectsUnknown(t *testing.T) {
	_, err := CreateBuilder("unknown-tool")
	if err == nil {
		t.Fatal("expected error for unknown builder")
	}
	assertUnsupported(t, err, "builder", BuilderNames)
}

func TestCreateBuilder_EmptyNameDefaultsToTsc(t *testing.T) {
	b, err := CreateBuilder("")
	if err != nil {
		t.Fatalf("CreateBuilder(\"\"): %v", err)
	}
	if b.Name() != BuilderTsc {
		t.Errorf("default builder = %q, want %q", b.Name(), BuilderTsc)
	}
}
