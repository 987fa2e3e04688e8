// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a build whenever sources under Root change and, when
// WatchAssets is set, mirrors changed asset files into OutDir. Build
// failures during watch are reported and the loop keeps running; only
// a watcher setup failure ends it.
type Watcher struct {
	Root        string
	OutDir      string
	Assets      []string // doublestar patterns relative to Root
	WatchAssets bool
	Rebuild     func() error
	Reporter    *Reporter
}

// Run blocks until done is closed or the underlying watcher fails.
// A nil done channel watches forever.
func (w *Watcher) Run(done <-chan struct{}) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fw.Close()

	addRecursive(fw, w.Root)
	w.Reporter.Infof("Watching %s for changes.", w.Root)

	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New subdirectories need their own watch.
			if ev.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					addRecursive(fw, ev.Name)
					continue
				}
			}
			w.handleChange(ev.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Reporter.Warnf("Watch error: %v", err)
		}
	}
}

func (w *Watcher) handleChange(path string) {
	rel, err := filepath.Rel(w.Root, path)
	if err != nil {
		logf("watch: ignoring %s outside root: %v", path, err)
		return
	}
	if w.WatchAssets && matchesAsset(w.Assets, rel) {
		if err := w.copyAsset(rel); err != nil {
			w.Reporter.Warnf("Could not copy asset %s: %v", rel, err)
		}
		return
	}
	w.Reporter.Infof("Change detected in %s, rebuilding.", rel)
	if err := w.Rebuild(); err != nil {
		w.Reporter.Errorf("Build failed: %v", err)
	}
}

// copyAsset mirrors one asset file from Root into OutDir, preserving
// its relative path. A removed asset is dropped from OutDir.
func (w *Watcher) copyAsset(rel string) error {
	src := filepath.Join(w.Root, rel)
	dst := filepath.Join(w.OutDir, rel)
	data, err := os.ReadFile(src)
	if errors.Is(err, fs.ErrNotExist) {
		logf("watch: asset %s removed, deleting %s", rel, dst)
		return removeIfExists(dst)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	logf("watch: copying asset %s -> %s", src, dst)
	return os.WriteFile(dst, data, 0o644)
}

// matchesAsset reports whether rel matches any configured asset
// pattern. Paths are normalized to slashes because doublestar patterns
// always use them.
func matchesAsset(patterns []string, rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// addRecursive watches root and every directory under it. Errors on
// individual directories are logged and skipped; watching is
// best-effort.
func addRecursive(fw *fsnotify.Watcher, root string) {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			logf("watch: cannot watch %s: %v", path, err)
		}
		return nil
	})
}

// removeIfExists deletes path, treating a missing file as success.
func removeIfExists(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
