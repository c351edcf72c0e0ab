/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve turns paths, package specifiers and URLs into *url.URL values.
package resolve

import (
	"fmt"
	"net/url"
	"regexp"

	"bennypowers.dev/uripath/pathutil"
	"bennypowers.dev/uripath/scheme"
	"bennypowers.dev/uripath/specifier"
)

var windowsDrive = regexp.MustCompile(`^[A-Za-z]:/`)

// AsURL converts path into a URL, resolving relative paths against base.
// An empty base means no base.
//
// Local paths become file: URLs, npm: and jsr: specifiers become
// canonical package URLs (see specifier.PackageURL), and http, https,
// file and data URLs are parsed as they are. Relative paths against an
// npm: or jsr: base stay inside that package's URL space:
//
//	AsURL("./to/file.txt", "npm:react") // npm:/react/to/file.txt
func AsURL(path, base string) (*url.URL, error) {
	path = pathutil.ToUnix(path)

	switch s := scheme.Detect(path); s {
	case scheme.Undefined:
		return nil, ErrEmptyPath
	case scheme.Local:
		return parse(localHref(path))
	case scheme.NPM, scheme.JSR:
		pu, err := specifier.ParsePackageURL(path)
		if err != nil {
			return nil, err
		}
		return parse(pu.Href)
	case scheme.Relative:
		return resolveRelative(path, base)
	case scheme.HTTP, scheme.HTTPS, scheme.File, scheme.Data:
		return parse(path)
	default:
		panic(fmt.Sprintf("resolve: unhandled scheme %v", s))
	}
}

// AsURLFrom is AsURL with an already parsed base. A nil base means no base.
func AsURLFrom(path string, base *url.URL) (*url.URL, error) {
	if base == nil {
		return AsURL(path, "")
	}
	return AsURL(path, base.String())
}

func resolveRelative(path, base string) (*url.URL, error) {
	base = pathutil.ToUnix(base)

	switch s := scheme.Detect(base); s {
	case scheme.Undefined:
		return nil, fmt.Errorf("%w: %q", ErrMissingBase, path)
	case scheme.Data, scheme.Relative:
		return nil, fmt.Errorf("%w %s: cannot resolve %q against %q", ErrUnsupportedBaseScheme, s, path, base)
	case scheme.NPM, scheme.JSR:
		pu, err := specifier.ParsePackageURL(base)
		if err != nil {
			return nil, err
		}
		joined := pu.WithPathname(pathutil.JoinPathname(pu.Pathname, path))
		return parse(joined.Href)
	case scheme.Local, scheme.File, scheme.HTTP, scheme.HTTPS:
		baseURL, err := AsURL(base, "")
		if err != nil {
			return nil, err
		}
		ref, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("invalid relative path %q: %w", path, err)
		}
		return baseURL.ResolveReference(ref), nil
	default:
		panic(fmt.Sprintf("resolve: unhandled base scheme %v", s))
	}
}

func localHref(path string) string {
	if windowsDrive.MatchString(path) {
		return "file:///" + path
	}
	return "file://" + path
}

func parse(href string) (*url.URL, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", href, err)
	}
	return u, nil
}
