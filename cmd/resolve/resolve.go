/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for uripath.
package resolve

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/uripath/cmd/cmdutil"
	"bennypowers.dev/uripath/config"
	resolvelib "bennypowers.dev/uripath/resolve"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve [paths...]",
	Short: "Resolve paths and specifiers to URLs",
	Long: `Convert local paths, package specifiers and URLs into absolute URLs.
Relative paths (./ and ../) need a base, taken from --base, the
URIPATH_BASE environment variable, or the config file.

Examples:
  uripath resolve /home/me/file.txt          # file:///home/me/file.txt
  uripath resolve npm:react                  # npm:/react/
  uripath resolve --base npm:react ./a.js    # npm:/react/a.js

With no arguments, the paths listed in .config/uripath.yaml are resolved.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("base", "b", "", "Base for relative paths (URL, local directory or package specifier)")
	_ = viper.BindPFlag("base", Cmd.Flags().Lookup("base"))
}

// Result is one resolved input.
type Result struct {
	Input string `json:"input" yaml:"input"`
	Base  string `json:"base,omitempty" yaml:"base,omitempty"`
	URL   string `json:"url" yaml:"url"`
}

// ResolveAll resolves entries. base wins over an entry's own base, which
// wins over the config.
// It stops at the first failure.
func ResolveAll(entries []config.Entry, base string, cfg *config.Config) ([]Result, error) {
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		b := base
		if b == "" {
			b = e.Base
		}
		if b == "" {
			b = cfg.BaseFor(e.Path)
		}
		u, err := resolvelib.AsURL(e.Path, b)
		if err != nil {
			return nil, fmt.Errorf("error resolving %s: %w", e.Path, err)
		}
		results = append(results, Result{Input: e.Path, Base: b, URL: u.String()})
	}
	return results, nil
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
	entries, err := env.Entries(args)
	if err != nil {
		return err
	}

	results, err := ResolveAll(entries, viper.GetString("base"), env.Config)
	if err != nil {
		return err
	}

	return cmdutil.Write(cmd.OutOrStdout(), format, results, func(w io.Writer) error {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.URL); err != nil {
				return err
			}
		}
		return nil
	})
}
