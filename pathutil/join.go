/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pathutil

import "strings"

// JoinSlash joins a and b with a single slash at the junction. At most one
// slash is removed from each side, so deliberate repeated slashes survive.
func JoinSlash(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return strings.TrimSuffix(a, "/") + "/" + strings.TrimPrefix(b, "/")
}

// JoinPathname resolves the reference rel against the pathname base the
// way a URL reference is resolved: the last segment of base is dropped
// unless base ends in a slash, then the result is normalized. The result
// always starts with "/" and never climbs above it.
//
//	JoinPathname("/react/", "./to/file.txt")      == "/react/to/file.txt"
//	JoinPathname("/lib/index.js", "../util.js")   == "/util.js"
func JoinPathname(base, rel string) string {
	if strings.HasPrefix(rel, "/") {
		return rootPathname(NormalizeUnixPath(rel), rel)
	}

	dir := base
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		dir = dir[:i+1]
	} else {
		dir = "/"
	}
	if !strings.HasPrefix(dir, "/") {
		dir = "/" + dir
	}

	return rootPathname(NormalizeUnixPath(dir+rel), rel)
}

// rootPathname drops ".." segments left over from climbing past the
// root, forces a leading slash, and restores a trailing slash that
// NormalizeUnixPath drops when the reference ends in a dot segment.
func rootPathname(p, rel string) string {
	for p == ".." || strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p[2:], "/")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") && (rel == "." || rel == ".." ||
		strings.HasSuffix(rel, "/.") || strings.HasSuffix(rel, "/..")) {
		p += "/"
	}
	return p
}
