/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"
	"strings"

	urifs "bennypowers.dev/uripath/fs"
)

// JSRNodeModulesResolver resolves jsr: specifiers via the npm compatibility layer.
// Packages must be installed via `npx jsr add @scope/pkg`.
//
// JSR packages installed via the npm compatibility layer appear in node_modules
// under the @jsr scope with the following naming convention:
//   - jsr:@scope/pkg → @jsr/scope__pkg
type JSRNodeModulesResolver struct {
	lookup nodeModulesLookup
}

// NewJSRNodeModulesResolver creates a resolver for jsr: package specifiers
// that looks in node_modules/@jsr/.
// The rootDir must be an absolute path so that in-memory filesystems work.
func NewJSRNodeModulesResolver(fs urifs.FileSystem, rootDir string) (*JSRNodeModulesResolver, error) {
	lookup, err := newNodeModulesLookup(fs, rootDir)
	if err != nil {
		return nil, err
	}
	return &JSRNodeModulesResolver{lookup: lookup}, nil
}

// Resolve resolves a jsr: specifier to a filesystem path.
func (r *JSRNodeModulesResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed := Parse(spec)
	if parsed.Kind != KindJSR {
		return nil, fmt.Errorf("not a jsr specifier: %s", spec)
	}

	pkgDir := filepath.Join("@jsr", npmCompatName(parsed.URL))
	packagePath, filePath, err := r.lookup.find(spec, pkgDir, parsed.File)
	if err != nil {
		return nil, fmt.Errorf("jsr %w", err)
	}

	return &ResolvedFile{
		Specifier:        spec,
		Path:             filePath,
		Kind:             KindJSR,
		InstalledVersion: r.lookup.installedVersion(packagePath, parsed.URL),
	}, nil
}

// CanResolve returns true for jsr: specifiers.
func (r *JSRNodeModulesResolver) CanResolve(spec string) bool {
	return strings.HasPrefix(spec, "jsr:")
}

// npmCompatName is the directory name of a jsr package under node_modules/@jsr.
// Scoped packages (@scope/pkg) become scope__pkg.
func npmCompatName(pu *PackageURL) string {
	if pu.Scope == "" {
		return pu.Pkg
	}
	return pu.Scope + "__" + pu.Pkg
}
