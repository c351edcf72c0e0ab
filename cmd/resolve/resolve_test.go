/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"errors"
	"testing"

	"bennypowers.dev/uripath/config"
	resolvelib "bennypowers.dev/uripath/resolve"
)

func entries(paths ...string) []config.Entry {
	out := make([]config.Entry, len(paths))
	for i, p := range paths {
		out[i] = config.Entry{Path: p}
	}
	return out
}

func TestResolveAll(t *testing.T) {
	cfg := &config.Config{
		Base:  "npm:react",
		Paths: []config.PathSpec{{Path: "./mod.ts", Base: "jsr:@std/path"}},
	}

	results, err := ResolveAll(entries("./a.js", "./mod.ts", "/tmp/x"), "", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Result{
		{Input: "./a.js", Base: "npm:react", URL: "npm:/react/a.js"},
		{Input: "./mod.ts", Base: "jsr:@std/path", URL: "jsr:/@std/path/mod.ts"},
		{Input: "/tmp/x", Base: "npm:react", URL: "file:///tmp/x"},
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, results[i], want[i])
		}
	}
}

func TestResolveAll_FlagBaseWins(t *testing.T) {
	cfg := &config.Config{Base: "npm:react"}

	results, err := ResolveAll(entries("./a.js"), "https://example.com/x/", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].URL != "https://example.com/x/a.js" {
		t.Errorf("URL = %q", results[0].URL)
	}
}

func TestResolveAll_MissingBase(t *testing.T) {
	_, err := ResolveAll(entries("./a.js"), "", config.Default())
	if !errors.Is(err, resolvelib.ErrMissingBase) {
		t.Errorf("error = %v, want ErrMissingBase", err)
	}
}

func TestResolveAll_EntryBase(t *testing.T) {
	cfg := &config.Config{Base: "npm:react"}

	results, err := ResolveAll([]config.Entry{
		{Path: "./to/file.txt", Base: "jsr:@std/fs"},
		{Path: "./b.js"},
	}, "", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].URL != "jsr:/@std/fs/to/file.txt" {
		t.Errorf("URL = %q, want entry base to apply", results[0].URL)
	}
	if results[1].URL != "npm:/react/b.js" {
		t.Errorf("URL = %q, want config base to apply", results[1].URL)
	}
}
