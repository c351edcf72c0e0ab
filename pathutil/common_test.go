/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pathutil

import (
	"reflect"
	"testing"
)

func TestCommonNormalizedUnixPath(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"none", nil, ""},
		{"single file", []string{"a/b/c.txt"}, "a/b/"},
		{"shared dir", []string{"/src/a/x.js", "/src/b/y.js"}, "/src/"},
		{"shared name prefix is not a dir", []string{"/src/app.js", "/src/apple.js"}, "/src/"},
		{"segment prefix", []string{"/project-a/x", "/project-b/y"}, "/"},
		{"nothing shared", []string{"a/x", "b/y"}, ""},
		{"no slash", []string{"abc", "abd"}, ""},
		{"identical dirs", []string{"a/b/", "a/b/"}, "a/b/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommonNormalizedUnixPath(tt.paths); got != tt.want {
				t.Errorf("CommonNormalizedUnixPath(%q) = %q, want %q", tt.paths, got, tt.want)
			}
		})
	}
}

func TestCommonPath(t *testing.T) {
	tests := []struct {
		paths []string
		want  string
	}{
		{[]string{"C:/Hello/World/This/Is/An/Example/Bla.cs", "C:/Hello/Earth/Bla/Bla/Bla"}, "C:/Hello/"},
		{[]string{`C:\Hello\World\a.cs`, "C:/Hello/World/b.cs"}, "C:/Hello/World/"},
		{[]string{"./src/./a.js", "src/lib/../b.js"}, "src/"},
	}

	for _, tt := range tests {
		if got := CommonPath(tt.paths); got != tt.want {
			t.Errorf("CommonPath(%q) = %q, want %q", tt.paths, got, tt.want)
		}
	}
}

func TestCommonPathTransform(t *testing.T) {
	type split struct{ dir, rest string }

	got := CommonPathTransform([]string{"/repo/src/a.js", `\repo\src\lib\b.js`}, func(dir, rest string) split {
		return split{dir, rest}
	})
	want := []split{
		{"/repo/src/", "a.js"},
		{"/repo/src/", "lib/b.js"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommonPathTransform = %+v, want %+v", got, want)
	}

	if got := CommonPathTransform(nil, func(dir, rest string) string { return dir + rest }); len(got) != 0 {
		t.Errorf("CommonPathTransform(nil) = %v, want empty", got)
	}
}

func TestCommonPathReplace(t *testing.T) {
	paths := []string{"/home/me/project/src/a.js", "/home/me/project/src/lib/b.js"}

	tests := []struct {
		newDir string
		want   []string
	}{
		{"/dist", []string{"/dist/a.js", "/dist/lib/b.js"}},
		{"/dist/", []string{"/dist/a.js", "/dist/lib/b.js"}},
		{"out/../build", []string{"out/../build/a.js", "out/../build/lib/b.js"}},
		{"", []string{"/a.js", "/lib/b.js"}},
	}

	for _, tt := range tests {
		got := CommonPathReplace(paths, tt.newDir)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CommonPathReplace(_, %q) = %q, want %q", tt.newDir, got, tt.want)
		}
	}
}
