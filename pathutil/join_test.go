/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pathutil

import (
	"strings"
	"testing"
)

func TestJoinSlash(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"a", "b", "a/b"},
		{"a/", "b", "a/b"},
		{"a", "/b", "a/b"},
		{"a/", "/b", "a/b"},
		{"a//", "b", "a//b"},
		{"a", "//b", "a//b"},
		{"", "b", "b"},
		{"a", "", "a"},
		{"https://cdn.example/", "/pkg/index.js", "https://cdn.example/pkg/index.js"},
	}

	for _, tt := range tests {
		got := JoinSlash(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("JoinSlash(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
		// No double slash at the junction unless an input carried extras.
		if !strings.HasSuffix(tt.a, "//") && !strings.HasPrefix(tt.b, "//") && strings.Contains(got, "//") && !strings.Contains(tt.a+tt.b, "//") {
			t.Errorf("JoinSlash(%q, %q) = %q introduced a double slash", tt.a, tt.b, got)
		}
	}
}

func TestJoinPathname(t *testing.T) {
	tests := []struct {
		base, rel string
		want      string
	}{
		{"/react/", "./to/file.txt", "/react/to/file.txt"},
		{"/lib/index.js", "./util.js", "/lib/util.js"},
		{"/lib/index.js", "../util.js", "/util.js"},
		{"/a/b/c/", "../../d", "/a/d"},
		{"/a/", "../../../x", "/x"},
		{"/a/", "../../x", "/x"},
		{"/a/", "../..", "/"},
		{"/a/b", "/../x", "/x"},
		{"/a/b", ".", "/a/"},
		{"/a/b/c", "..", "/a/"},
		{"/a/", "./b/", "/a/b/"},
		{"/a/", "./b//c", "/a/b//c"},
		{"/a/b", "/c/./d", "/c/d"},
		{"", "./x", "/x"},
		{"noslash", "./x", "/x"},
	}

	for _, tt := range tests {
		if got := JoinPathname(tt.base, tt.rel); got != tt.want {
			t.Errorf("JoinPathname(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}
