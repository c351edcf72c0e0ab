/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/uripath/specifier"
)

func TestAsURL(t *testing.T) {
	tests := []struct {
		name string
		path string
		base string
		want string
	}{
		{"relative against bare npm package", "./to/file.txt", "npm:react", "npm:/react/to/file.txt"},
		{"relative against npm file", "./util.js", "npm:@scope/pkg@1.0.0/lib/index.js", "npm:/@scope/pkg@1.0.0/lib/util.js"},
		{"parent against npm file", "../README.md", "npm:@scope/pkg/lib/index.js", "npm:/@scope/pkg/README.md"},
		{"cannot climb out of package", "../../../x.js", "npm:react/a/", "npm:/react/x.js"},
		{"relative against jsr", "./posix/join.ts", "jsr:@std/path@1.0.0", "jsr:/@std/path@1.0.0/posix/join.ts"},
		{"relative against canonical npm", "./b.js", "npm:/react/a.js", "npm:/react/b.js"},
		{"npm specifier", "npm:react", "", "npm:/react/"},
		{"jsr specifier", "jsr:@std/fs/mod.ts", "", "jsr:/@std/fs/mod.ts"},
		{"absolute local", "/home/me/file.txt", "", "file:///home/me/file.txt"},
		{"windows local", `C:\Users\me\file.txt`, "", "file:///C:/Users/me/file.txt"},
		{"https", "https://example.com/a/b?q=1", "", "https://example.com/a/b?q=1"},
		{"http ignores base", "http://example.com/a", "npm:react", "http://example.com/a"},
		{"file", "file:///etc/hosts", "", "file:///etc/hosts"},
		{"data", "data:text/plain,hello", "", "data:text/plain,hello"},
		{"relative against https", "../x.js", "https://example.com/a/b/c.js", "https://example.com/a/x.js"},
		{"relative against file", "./x.js", "file:///home/me/", "file:///home/me/x.js"},
		{"relative against local dir", "./src/a.js", "/home/me/project/", "file:///home/me/project/src/a.js"},
		{"relative windows separators", `.\src\a.js`, `C:\project\`, "file:///C:/project/src/a.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsURL(tt.path, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAsURL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		base    string
		wantErr error
	}{
		{"missing base", "./a.js", "", ErrMissingBase},
		{"data base", "./a.js", "data:text/plain,hi", ErrUnsupportedBaseScheme},
		{"relative base", "./a.js", "./dir/", ErrUnsupportedBaseScheme},
		{"parent-relative base", "../a.js", "../dir/", ErrUnsupportedBaseScheme},
		{"empty path", "", "npm:react", ErrEmptyPath},
		{"malformed npm path", "npm:@scope", "", specifier.ErrInvalidPackageSpecifier},
		{"malformed npm base", "./a.js", "npm:@scope/", specifier.ErrInvalidPackageSpecifier},
		{"stray percent in npm path", "npm:pkg/100%.js", "", specifier.ErrInvalidPackageSpecifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsURL(tt.path, tt.base)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAsURLFrom(t *testing.T) {
	base, err := url.Parse("jsr:/@std/path@1.0.0/mod.ts")
	require.NoError(t, err)

	got, err := AsURLFrom("./posix/mod.ts", base)
	require.NoError(t, err)
	assert.Equal(t, "jsr:/@std/path@1.0.0/posix/mod.ts", got.String())

	_, err = AsURLFrom("./posix/mod.ts", nil)
	assert.ErrorIs(t, err, ErrMissingBase)

	httpBase, err := url.Parse("https://example.com/pkg/")
	require.NoError(t, err)
	got, err = AsURLFrom("./a.js", httpBase)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/pkg/a.js", got.String())
}

func TestAsURL_PackageHrefIsStable(t *testing.T) {
	for _, spec := range []string{"npm:react", "npm:@scope/pkg@1.2.3/a/b.js", "jsr:@std/path/mod.ts"} {
		first, err := AsURL(spec, "")
		require.NoError(t, err)

		second, err := AsURL(first.String(), "")
		require.NoError(t, err)
		assert.Equal(t, first.String(), second.String(), "re-resolving %s", spec)
	}
}
