/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"strings"
)

// CDN names a public package CDN.
type CDN string

const (
	CDNUnpkg    CDN = "unpkg"
	CDNEsmSh    CDN = "esm.sh"
	CDNEsmRun   CDN = "esm.run"
	CDNJspm     CDN = "jspm"
	CDNJsdelivr CDN = "jsdelivr"
)

var validCDNs = []CDN{CDNUnpkg, CDNEsmSh, CDNEsmRun, CDNJspm, CDNJsdelivr}

// ValidCDNs returns the supported CDN names.
func ValidCDNs() []string {
	names := make([]string, len(validCDNs))
	for i, c := range validCDNs {
		names[i] = string(c)
	}
	return names
}

// ParseCDN validates a CDN name.
func ParseCDN(name string) (CDN, error) {
	for _, c := range validCDNs {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q: expected one of %s", ErrUnknownCDN, name, strings.Join(ValidCDNs(), ", "))
}

// CDNURL returns the CDN URL for an npm: or jsr: specifier.
// The zero CDN means unpkg. Returns ("", false) for local paths,
// specifiers without a file component, and registries the CDN does not serve.
func CDNURL(spec string, cdn CDN) (string, bool) {
	parsed := Parse(spec)
	if parsed.Kind == KindLocal || parsed.File == "" {
		return "", false
	}
	pu := parsed.URL
	path := pu.Host + pu.Pathname

	switch cdn {
	case "", CDNUnpkg:
		if parsed.IsNPM() {
			return "https://unpkg.com/" + path, true
		}
	case CDNEsmSh:
		if parsed.IsNPM() {
			return "https://esm.sh/" + path, true
		}
		if pu.Scope != "" {
			return "https://esm.sh/jsr/" + path, true
		}
	case CDNEsmRun:
		if parsed.IsNPM() {
			return "https://esm.run/" + path, true
		}
	case CDNJspm:
		if parsed.IsNPM() {
			return "https://ga.jspm.io/npm:" + path, true
		}
	case CDNJsdelivr:
		if parsed.IsNPM() {
			return "https://cdn.jsdelivr.net/npm/" + path, true
		}
	}
	return "", false
}
