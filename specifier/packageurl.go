/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// packageURLPattern captures protocol, optional scope, package name,
// optional version and optional pathname. A single slash directly after
// the protocol is allowed so that an Href parses back to itself.
var packageURLPattern = regexp.MustCompile(`^(npm:|jsr:)/?(?:@([^/]+)/)?([^@/]+)(?:@([^/]+))?(/.*)?$`)

// PackageURL is an npm: or jsr: specifier rewritten into a form that
// net/url understands: protocol:/host/pathname.
//
// "npm:react" has no slash after the protocol, so a generic URL parser
// treats everything as opaque data. Href is always "npm:/react/", which
// parses to a URL with path "/react/".
type PackageURL struct {
	// Href is Protocol + "/" + Host + Pathname.
	Href string `json:"href" yaml:"href"`

	// Protocol is "npm:" or "jsr:".
	Protocol string `json:"protocol" yaml:"protocol"`

	// Scope is the scope name without its "@", or empty for unscoped packages.
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`

	// Pkg is the bare package name without scope or version.
	Pkg string `json:"pkg" yaml:"pkg"`

	// Version is the version or range after "@", if any.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Pathname always starts with "/".
	Pathname string `json:"pathname" yaml:"pathname"`

	// Host is ["@" Scope "/"] Pkg ["@" Version].
	Host string `json:"host" yaml:"host"`
}

// ParsePackageURL parses an npm: or jsr: specifier.
// It returns ErrInvalidPackageSpecifier when no protocol or package name
// can be extracted, or when the specifier holds text that net/url rejects,
// such as a "%" not followed by two hex digits.
func ParsePackageURL(input string) (*PackageURL, error) {
	m := packageURLPattern.FindStringSubmatch(input)
	if m == nil || m[1] == "" || m[3] == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackageSpecifier, input)
	}

	p := &PackageURL{
		Protocol: m[1],
		Scope:    m[2],
		Pkg:      m[3],
		Version:  m[4],
		Pathname: m[5],
	}
	if p.Pathname == "" {
		p.Pathname = "/"
	}

	p.Host = p.Name()
	if p.Version != "" {
		p.Host += "@" + p.Version
	}
	p.Href = p.Protocol + "/" + p.Host + p.Pathname
	if _, err := url.Parse(p.Href); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPackageSpecifier, input, err)
	}
	return p, nil
}

// Name returns the package name as it appears in node_modules,
// e.g. "@scope/pkg" or "pkg".
func (p *PackageURL) Name() string {
	if p.Scope == "" {
		return p.Pkg
	}
	return "@" + p.Scope + "/" + p.Pkg
}

// File returns the pathname without its leading slash.
func (p *PackageURL) File() string {
	return strings.TrimPrefix(p.Pathname, "/")
}

// IsNPM returns true for npm: specifiers.
func (p *PackageURL) IsNPM() bool {
	return p.Protocol == "npm:"
}

// IsJSR returns true for jsr: specifiers.
func (p *PackageURL) IsJSR() bool {
	return p.Protocol == "jsr:"
}

// URL parses Href.
func (p *PackageURL) URL() (*url.URL, error) {
	return url.Parse(p.Href)
}

// WithPathname returns a copy of p with a different pathname.
// The pathname is used verbatim apart from gaining a leading slash.
func (p *PackageURL) WithPathname(pathname string) *PackageURL {
	if !strings.HasPrefix(pathname, "/") {
		pathname = "/" + pathname
	}
	c := *p
	c.Pathname = pathname
	c.Href = c.Protocol + "/" + c.Host + c.Pathname
	return &c
}

// String returns Href.
func (p *PackageURL) String() string {
	return p.Href
}

// VersionConstraint parses Version as a semver range.
// It returns nil, nil when the specifier carries no version, and
// ErrNotSemverRange for dist-tags such as "latest" or "next".
func (p *PackageURL) VersionConstraint() (*semver.Constraints, error) {
	if p.Version == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(p.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNotSemverRange, p.Version, err)
	}
	return c, nil
}
