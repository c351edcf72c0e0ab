/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pathutil normalizes, joins and compares slash-separated paths.
//
// Unlike path.Clean, normalization here keeps leading ".." segments that
// cannot be resolved and keeps empty segments produced by repeated
// slashes, so "a//b" stays "a//b".
package pathutil

import "strings"

// sentinel seeds the segment stack so that leading ".." segments
// accumulate instead of popping past the start.
const sentinel = ".."

// NormalizeUnixPath removes "." segments and resolves ".." segments
// against the preceding segment. Unresolvable leading ".." segments are
// kept. The empty segment before a leading slash is an ordinary segment,
// so "/a/.." normalizes to "" and "/../a" to "a".
func NormalizeUnixPath(p string) string {
	stack := []string{sentinel}

	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case ".":
		case "..":
			if stack[len(stack)-1] == ".." {
				stack = append(stack, seg)
			} else {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}

	return strings.Join(stack[1:], "/")
}

// NormalizePath is NormalizeUnixPath for paths that may use backslashes.
func NormalizePath(p string) string {
	return NormalizeUnixPath(ToUnix(p))
}

// ToUnix converts Windows separators to forward slashes.
func ToUnix(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
