/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/uripath/specifier"
)

func TestParseAll(t *testing.T) {
	parsed, err := ParseAll([]string{"npm:react", "jsr:@std/path@1.0.0/mod.ts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 results, got %d", len(parsed))
	}
	if parsed[0].Href != "npm:/react/" {
		t.Errorf("Href = %q", parsed[0].Href)
	}
	if parsed[1].Scope != "std" {
		t.Errorf("Scope = %q", parsed[1].Scope)
	}
}

func TestParseAll_CollectsErrors(t *testing.T) {
	parsed, err := ParseAll([]string{"pnpm:x", "npm:ok", "npm:@bad"})
	if !errors.Is(err, specifier.ErrInvalidPackageSpecifier) {
		t.Fatalf("error = %v, want ErrInvalidPackageSpecifier", err)
	}
	if !strings.Contains(err.Error(), "pnpm:x") || !strings.Contains(err.Error(), "npm:@bad") {
		t.Errorf("error should mention every bad input: %v", err)
	}
	if len(parsed) != 1 {
		t.Errorf("expected the valid specifier to be kept, got %d", len(parsed))
	}
}

func TestWriteText(t *testing.T) {
	p, err := specifier.ParsePackageURL("npm:react")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	writeText(&buf, p)

	want := "Href:     npm:/react/\nProtocol: npm:\nPkg:      react\nPathname: /\nHost:     react\n"
	if buf.String() != want {
		t.Errorf("writeText =\n%s\nwant\n%s", buf.String(), want)
	}
}
