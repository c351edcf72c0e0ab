/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scheme classifies path and URL strings by their leading prefix.
package scheme

import (
	"fmt"
	"strings"
)

// Scheme is the prefix tag of a path or URL string.
type Scheme int

const (
	// Undefined is returned for the empty string.
	Undefined Scheme = iota
	// Local is a plain filesystem path (absolute, bare, or Windows-style).
	Local
	// Relative is a path starting with ./ or ../
	Relative
	// File is a file:// URL.
	File
	// HTTP is an http:// URL.
	HTTP
	// HTTPS is an https:// URL.
	HTTPS
	// Data is a data: URL.
	Data
	// JSR is a jsr: package specifier.
	JSR
	// NPM is an npm: package specifier.
	NPM
)

var names = [...]string{
	Undefined: "undefined",
	Local:     "local",
	Relative:  "relative",
	File:      "file",
	HTTP:      "http",
	HTTPS:     "https",
	Data:      "data",
	JSR:       "jsr",
	NPM:       "npm",
}

// prefixes is consulted in order; the first match wins.
var prefixes = []struct {
	prefix string
	scheme Scheme
}{
	{"npm:", NPM},
	{"jsr:", JSR},
	{"data:", Data},
	{"http://", HTTP},
	{"https://", HTTPS},
	{"file://", File},
	{"./", Relative},
	{"../", Relative},
}

// Detect returns the scheme of path. It never fails: unrecognised
// non-empty strings are Local.
func Detect(path string) Scheme {
	if path == "" {
		return Undefined
	}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p.prefix) {
			return p.scheme
		}
	}
	return Local
}

// String returns the lowercase scheme name.
func (s Scheme) String() string {
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return names[s]
}

// IsPackage reports whether s is npm or jsr.
func (s Scheme) IsPackage() bool {
	return s == NPM || s == JSR
}

// Parse converts a scheme name back into a Scheme.
func Parse(name string) (Scheme, error) {
	for i, n := range names {
		if n == name {
			return Scheme(i), nil
		}
	}
	return Undefined, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// All returns every scheme in declaration order.
func All() []Scheme {
	all := make([]Scheme, len(names))
	for i := range names {
		all[i] = Scheme(i)
	}
	return all
}
