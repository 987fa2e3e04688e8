// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

// resolveStrategy maps a name onto one of a closed set of
// implementations. An empty name substitutes fallback when one exists;
// a name outside the set fails with UnsupportedStrategyError before any
// implementation is touched. The allowed slice doubles as the
// user-facing enumeration in the error message.
func resolveStrategy[T any](kind, name, fallback string, impls map[string]T, allowed []string) (T, error) {
	var zero T
	if name == "" {
		if fallback == "" {
			return zero, &UnsupportedStrategyError{Kind: kind, Name: name, Allowed: allowed}
		}
		logf("strategy: no %s requested, using default %q", kind, fallback)
		name = fallback
	}
	impl, ok := impls[name]
	if !ok {
		return zero, &UnsupportedStrategyError{Kind: kind, Name: name, Allowed: allowed}
	}
	return impl, nil
}
