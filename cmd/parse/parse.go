/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for uripath.
package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/uripath/cmd/cmdutil"
	"bennypowers.dev/uripath/internal/logger"
	"bennypowers.dev/uripath/specifier"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse specifiers...",
	Short: "Parse npm: and jsr: package specifiers",
	Long: `Parse npm: and jsr: specifiers into their parts and print the canonical
URL form (protocol:/host/pathname).

Examples:
  uripath parse npm:react
  uripath parse --format json jsr:@std/path@1.0.0/posix/join.ts`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	env, err := cmdutil.Load()
	if err != nil {
		return err
	}
	format, err := env.Format()
	if err != nil {
		return err
	}

	parsed, err := ParseAll(args)
	if err != nil {
		return err
	}

	return cmdutil.Write(cmd.OutOrStdout(), format, parsed, func(w io.Writer) error {
		for i, p := range parsed {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeText(w, p)
		}
		return nil
	})
}

// ParseAll parses every specifier, reporting all failures together.
func ParseAll(specs []string) ([]*specifier.PackageURL, error) {
	var (
		parsed []*specifier.PackageURL
		errs   []error
	)
	for _, s := range specs {
		p, err := specifier.ParsePackageURL(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := p.VersionConstraint(); errors.Is(err, specifier.ErrNotSemverRange) {
			logger.Debug("%s: version %q is a tag", s, p.Version)
		}
		parsed = append(parsed, p)
	}
	return parsed, errors.Join(errs...)
}

func writeText(w io.Writer, p *specifier.PackageURL) {
	fields := []struct{ name, value string }{
		{"href", p.Href},
		{"protocol", p.Protocol},
		{"scope", p.Scope},
		{"pkg", p.Pkg},
		{"version", p.Version},
		{"pathname", p.Pathname},
		{"host", p.Host},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(w, "%-9s %s\n", cmdutil.Label(f.name)+":", f.value)
	}
}
