/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for uripath.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/uripath/internal/mapfs"
)

// findFixture looks for testdata/<rel> from the package directory and
// up to two parents, since go test runs in each package's directory.
func findFixture(rel string) string {
	for _, prefix := range []string{".", "..", filepath.Join("..", "..")} {
		p := filepath.Join(prefix, "testdata", rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// NewFixtureFS copies testdata/<fixtureDir> into a MapFileSystem mounted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath := findFixture(fixtureDir)
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// FixtureDir returns the on-disk path of testdata/<fixtureDir>, for tests
// that exercise the OS filesystem.
func FixtureDir(t *testing.T, fixtureDir string) string {
	t.Helper()

	p := findFixture(fixtureDir)
	if p == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", p, err)
	}
	return abs
}
