/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize provides the normalize command for uripath.
package normalize

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/uripath/cmd/cmdutil"
	"bennypowers.dev/uripath/pathutil"
)

// Cmd is the normalize cobra command.
var Cmd = &cobra.Command{
	Use:   "normalize paths...",
	Short: "Normalize dot segments in paths",
	Long: `Remove "." segments and resolve ".." segments. Leading ".." segments that
cannot be resolved are kept, as are repeated slashes.

Backslashes are treated as separators unless --unix is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("unix", false, "Treat backslashes as ordinary characters")
}

// Result pairs an input with its normalized form.
type Result struct {
	Input      string `json:"input" yaml:"input"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

func run(cmd *cobra.Command, args []string) error {
	unix, _ := cmd.Flags().GetBool("unix")

	env, err := cmdutil.Load()
	if err != nil {
		return err
	}
	format, err := env.Format()
	if err != nil {
		return err
	}

	normalize := pathutil.NormalizePath
	if unix {
		normalize = pathutil.NormalizeUnixPath
	}

	results := make([]Result, len(args))
	for i, a := range args {
		results[i] = Result{Input: a, Normalized: normalize(a)}
	}

	return cmdutil.Write(cmd.OutOrStdout(), format, results, func(w io.Writer) error {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Normalized); err != nil {
				return err
			}
		}
		return nil
	})
}
