/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses npm and jsr package specifiers and locates
// the files they point to.
package specifier

import "strings"

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is anything that is not a package specifier.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindJSR is a jsr package specifier.
	KindJSR
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNPM:
		return "npm"
	case KindJSR:
		return "jsr"
	default:
		return "local"
	}
}

// MarshalText renders the kind name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Specifier is a classified specifier string.
type Specifier struct {
	// Kind is the type of specifier (local, npm, jsr).
	Kind Kind

	// Package is the package name without version (e.g., "@scope/pkg" or "pkg").
	Package string

	// Version is the requested version or range, if any.
	Version string

	// File is the file path within the package, or the whole input for local paths.
	File string

	// Raw is the original specifier string.
	Raw string

	// URL is the parsed package URL; nil for local paths.
	URL *PackageURL
}

// Parse classifies spec. Strings that are not valid package specifiers
// are returned as KindLocal with File set to the input.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, "npm:") || strings.HasPrefix(spec, "jsr:") {
		if pu, err := ParsePackageURL(spec); err == nil {
			kind := KindNPM
			if pu.IsJSR() {
				kind = KindJSR
			}
			return &Specifier{
				Kind:    kind,
				Package: pu.Name(),
				Version: pu.Version,
				File:    pu.File(),
				Raw:     spec,
				URL:     pu,
			}
		}
	}

	return &Specifier{
		Kind: KindLocal,
		File: spec,
		Raw:  spec,
	}
}

// IsPackageSpecifier returns true if the string is a valid npm or jsr specifier.
func IsPackageSpecifier(spec string) bool {
	return Parse(spec).Kind != KindLocal
}

// IsNPM returns true if this is an npm specifier.
func (s *Specifier) IsNPM() bool {
	return s.Kind == KindNPM
}

// IsJSR returns true if this is a jsr specifier.
func (s *Specifier) IsJSR() bool {
	return s.Kind == KindJSR
}

// IsLocal returns true if this is a local file path.
func (s *Specifier) IsLocal() bool {
	return s.Kind == KindLocal
}
