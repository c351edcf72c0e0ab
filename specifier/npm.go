/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"strings"

	urifs "bennypowers.dev/uripath/fs"
)

// NPMResolver resolves npm: specifiers to node_modules paths.
type NPMResolver struct {
	lookup nodeModulesLookup
}

// NewNPMResolver creates a resolver for npm: package specifiers.
// The rootDir is the starting directory for node_modules lookup and must be absolute.
func NewNPMResolver(fs urifs.FileSystem, rootDir string) (*NPMResolver, error) {
	lookup, err := newNodeModulesLookup(fs, rootDir)
	if err != nil {
		return nil, err
	}
	return &NPMResolver{lookup: lookup}, nil
}

// Resolve resolves an npm: specifier to a filesystem path.
// It walks up the directory tree looking for node_modules.
func (r *NPMResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed := Parse(spec)
	if parsed.Kind != KindNPM {
		return nil, fmt.Errorf("not an npm specifier: %s", spec)
	}

	packagePath, filePath, err := r.lookup.find(spec, parsed.Package, parsed.File)
	if err != nil {
		return nil, err
	}

	return &ResolvedFile{
		Specifier:        spec,
		Path:             filePath,
		Kind:             KindNPM,
		InstalledVersion: r.lookup.installedVersion(packagePath, parsed.URL),
	}, nil
}

// CanResolve returns true for npm: specifiers.
func (r *NPMResolver) CanResolve(spec string) bool {
	return strings.HasPrefix(spec, "npm:")
}
