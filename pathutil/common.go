/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pathutil

import "strings"

// CommonNormalizedUnixPath returns the longest directory prefix shared by
// all paths, including its trailing slash. Paths must already be
// normalized and slash separated. The result never ends mid-segment and
// is empty when the paths share no directory.
func CommonNormalizedUnixPath(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	prefix := paths[0]
	for _, p := range paths[1:] {
		n := min(len(prefix), len(p))
		i := 0
		for i < n && prefix[i] == p[i] {
			i++
		}
		prefix = prefix[:i]
		if prefix == "" {
			return ""
		}
	}

	return prefix[:strings.LastIndex(prefix, "/")+1]
}

// CommonPath normalizes every path and returns their common directory.
func CommonPath(paths []string) string {
	return CommonNormalizedUnixPath(normalizeAll(paths))
}

// CommonPathTransform calls fn with the common directory and the rest of
// each normalized path, in input order.
func CommonPathTransform[T any](paths []string, fn func(commonDir, remainder string) T) []T {
	normalized := normalizeAll(paths)
	commonDir := CommonNormalizedUnixPath(normalized)

	out := make([]T, len(normalized))
	for i, p := range normalized {
		out[i] = fn(commonDir, p[len(commonDir):])
	}
	return out
}

// CommonPathReplace swaps the common directory of paths for newDir.
// newDir gains a trailing slash if it lacks one and is otherwise used as given.
func CommonPathReplace(paths []string, newDir string) []string {
	if !strings.HasSuffix(newDir, "/") {
		newDir += "/"
	}
	return CommonPathTransform(paths, func(_, remainder string) string {
		return newDir + remainder
	})
}

func normalizeAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = NormalizePath(p)
	}
	return out
}
