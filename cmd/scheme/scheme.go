/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scheme provides the scheme command for uripath.
package scheme

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/uripath/cmd/cmdutil"
	schemelib "bennypowers.dev/uripath/scheme"
)

// Cmd is the scheme cobra command.
var Cmd = &cobra.Command{
	Use:   "scheme [paths...]",
	Short: "Classify paths and URLs by scheme",
	Long: `Print the scheme of each path: undefined, local, relative, file, http,
https, data, jsr or npm.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

// Result is one classified path.
type Result struct {
	Path   string `json:"path" yaml:"path"`
	Scheme string `json:"scheme" yaml:"scheme"`
}

// Classify detects the scheme of every path.
func Classify(paths []string) []Result {
	results := make([]Result, len(paths))
	for i, p := range paths {
		results[i] = Result{Path: p, Scheme: schemelib.Detect(p).String()}
	}
	return results
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
	inputs, err := env.Inputs(args)
	if err != nil {
		return err
	}

	results := Classify(inputs)
	return cmdutil.Write(cmd.OutOrStdout(), format, results, func(w io.Writer) error {
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%-10s %s\n", r.Scheme, r.Path); err != nil {
				return err
			}
		}
		return nil
	})
}
