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

func TestParseFilepathInfo(t *testing.T) {
	tests := []struct {
		input string
		want  FilepathInfo
	}{
		{
			input: "src/components/./button/../Button.tsx",
			want: FilepathInfo{
				Path:     "src/components/Button.tsx",
				Dirpath:  "src/components/",
				Dirname:  "components",
				Filename: "Button.tsx",
				Basename: "Button",
				Extname:  ".tsx",
			},
		},
		{
			input: "/etc/.env",
			want: FilepathInfo{
				Path:     "/etc/.env",
				Dirpath:  "/etc/",
				Dirname:  "etc",
				Filename: ".env",
				Basename: ".env",
			},
		},
		{
			input: "/archive.tar.gz",
			want: FilepathInfo{
				Path:     "/archive.tar.gz",
				Dirpath:  "/",
				Filename: "archive.tar.gz",
				Basename: "archive.tar",
				Extname:  ".gz",
			},
		},
		{
			input: "README",
			want: FilepathInfo{
				Path:     "README",
				Filename: "README",
				Basename: "README",
			},
		},
		{
			input: `C:\dist\`,
			want: FilepathInfo{
				Path:    "C:/dist/",
				Dirpath: "C:/dist/",
				Dirname: "dist",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseFilepathInfo(tt.input)
			if got != tt.want {
				t.Errorf("ParseFilepathInfo(%q) =\n  %+v\nwant\n  %+v", tt.input, got, tt.want)
			}
			if strings.Contains(got.Filename, "/") {
				t.Errorf("Filename %q contains a slash", got.Filename)
			}
			if got.Basename+got.Extname != got.Filename {
				t.Errorf("Basename+Extname = %q, want %q", got.Basename+got.Extname, got.Filename)
			}
			if got.Dirpath != "" && !strings.HasSuffix(got.Dirpath, "/") {
				t.Errorf("Dirpath %q does not end with a slash", got.Dirpath)
			}
		})
	}
}
