/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	urifs "bennypowers.dev/uripath/fs"
	"bennypowers.dev/uripath/internal/logger"
)

// ResolvedFile preserves both the original specifier and the resolved filesystem path.
type ResolvedFile struct {
	// Specifier is the original specifier (e.g., "npm:@scope/pkg/index.js").
	Specifier string `json:"specifier" yaml:"specifier"`

	// Path is the resolved filesystem path (e.g., "/project/node_modules/@scope/pkg/index.js").
	Path string `json:"path" yaml:"path"`

	// Kind indicates the type of specifier (KindNPM, KindJSR, KindLocal).
	Kind Kind `json:"kind" yaml:"kind"`

	// InstalledVersion is the version from the package's package.json, when known.
	InstalledVersion string `json:"installedVersion,omitempty" yaml:"installedVersion,omitempty"`
}

// Resolver resolves specifiers to filesystem paths.
type Resolver interface {
	// Resolve resolves a specifier to a ResolvedFile.
	// Returns an error if resolution fails.
	Resolve(spec string) (*ResolvedFile, error)

	// CanResolve returns true if this resolver can handle the given specifier.
	CanResolve(spec string) bool
}

// ChainResolver tries multiple resolvers in order.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a resolver that tries each resolver in order.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve hands spec to the first resolver that can handle it.
func (c *ChainResolver) Resolve(spec string) (*ResolvedFile, error) {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return r.Resolve(spec)
		}
	}
	return nil, fmt.Errorf("no resolver found for specifier: %s", spec)
}

// CanResolve returns true if any resolver can handle the specifier.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}

// NewDefaultResolver creates a resolver chain that handles npm:, jsr:, and local paths.
// The rootDir is the starting directory for node_modules lookup and must be absolute.
func NewDefaultResolver(fs urifs.FileSystem, rootDir string) (Resolver, error) {
	npm, err := NewNPMResolver(fs, rootDir)
	if err != nil {
		return nil, err
	}
	jsr, err := NewJSRNodeModulesResolver(fs, rootDir)
	if err != nil {
		return nil, err
	}
	return NewChainResolver(npm, jsr, NewLocalResolver()), nil
}

// nodeModulesLookup walks from rootDir to the filesystem root looking for
// node_modules/<pkgDir>/<file>.
type nodeModulesLookup struct {
	fs      urifs.FileSystem
	rootDir string
}

func newNodeModulesLookup(fs urifs.FileSystem, rootDir string) (nodeModulesLookup, error) {
	if !filepath.IsAbs(rootDir) {
		return nodeModulesLookup{}, fmt.Errorf("rootDir must be an absolute path, got: %s", rootDir)
	}
	return nodeModulesLookup{fs: fs, rootDir: rootDir}, nil
}

// find returns the package directory and file path of the first match.
func (l nodeModulesLookup) find(spec, pkgDir, file string) (string, string, error) {
	dir := l.rootDir
	for {
		base := filepath.Join(dir, "node_modules")
		packagePath := filepath.Join(base, pkgDir)
		filePath := filepath.Clean(filepath.Join(packagePath, file))

		if !isInsideDir(filePath, packagePath) {
			return "", "", fmt.Errorf("%w in specifier: %s", ErrPathTraversal, spec)
		}

		if l.fs.Exists(filePath) {
			return packagePath, filePath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", "", fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrPackageNotFound, pkgDir, l.rootDir)
}

// installedVersion reads the version field of packagePath/package.json and
// warns when it does not satisfy the specifier's range.
func (l nodeModulesLookup) installedVersion(packagePath string, pu *PackageURL) string {
	data, err := l.fs.ReadFile(filepath.Join(packagePath, "package.json"))
	if err != nil {
		return ""
	}
	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		logger.Debug("ignoring malformed package.json in %s: %v", packagePath, err)
		return ""
	}
	if manifest.Version == "" {
		return ""
	}

	constraint, err := pu.VersionConstraint()
	if errors.Is(err, ErrNotSemverRange) {
		logger.Debug("not checking %s against tag %q", pu.Name(), pu.Version)
		return manifest.Version
	}
	if constraint == nil {
		return manifest.Version
	}

	v, err := semver.NewVersion(manifest.Version)
	if err != nil {
		logger.Debug("installed version %q of %s is not semver: %v", manifest.Version, pu.Name(), err)
		return manifest.Version
	}
	if !constraint.Check(v) {
		logger.Warn("%s: installed version %s does not satisfy %s", pu.Name(), manifest.Version, pu.Version)
	}
	return manifest.Version
}

// isInsideDir reports whether path is dir or a descendant of it.
func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
