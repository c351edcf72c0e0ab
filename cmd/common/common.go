/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides the common command for uripath.
package common

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/uripath/cmd/cmdutil"
	"bennypowers.dev/uripath/config"
	"bennypowers.dev/uripath/pathutil"
)

// Cmd is the common cobra command.
var Cmd = &cobra.Command{
	Use:   "common [paths...]",
	Short: "Find the common directory of a set of paths",
	Long: `Print the longest directory shared by all paths. The result always ends at
a directory boundary, so /src/app.js and /src/apple.js share /src/.

Examples:
  uripath common /repo/src/a.js /repo/src/lib/b.js      # /repo/src/
  uripath common --split /repo/src/a.js /repo/lib/b.js  # dir and remainder per path
  uripath common --replace dist --glob 'src/**/*.js'    # rebase onto dist/`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("replace", "", "Replace the common directory with this one")
	Cmd.Flags().Bool("split", false, "Print the common directory and remainder of each path")
	Cmd.Flags().Bool("glob", false, "Expand arguments as globs relative to the project root")
}

// Split is one path divided at the common directory.
type Split struct {
	Dir       string `json:"dir" yaml:"dir"`
	Remainder string `json:"remainder" yaml:"remainder"`
}

// Output is the structured result of the common command.
type Output struct {
	Common   string   `json:"common" yaml:"common"`
	Paths    []Split  `json:"paths,omitempty" yaml:"paths,omitempty"`
	Replaced []string `json:"replaced,omitempty" yaml:"replaced,omitempty"`
}

// Compute builds the command output for paths.
func Compute(paths []string, split bool, replace string) Output {
	out := Output{Common: pathutil.CommonPath(paths)}
	if split {
		out.Paths = pathutil.CommonPathTransform(paths, func(dir, rest string) Split {
			return Split{Dir: dir, Remainder: rest}
		})
	}
	if replace != "" {
		out.Replaced = pathutil.CommonPathReplace(paths, replace)
	}
	return out
}

func run(cmd *cobra.Command, args []string) error {
	replace, _ := cmd.Flags().GetString("replace")
	split, _ := cmd.Flags().GetBool("split")
	glob, _ := cmd.Flags().GetBool("glob")

	env, err := cmdutil.Load()
	if err != nil {
		return err
	}
	format, err := env.Format()
	if err != nil {
		return err
	}

	var paths []string
	if glob && len(args) > 0 {
		paths, err = config.ExpandPatterns(env.FS, env.Root, args)
		if err != nil {
			return fmt.Errorf("error expanding globs: %w", err)
		}
	} else {
		paths, err = env.Inputs(args)
		if err != nil {
			return err
		}
	}

	out := Compute(paths, split, replace)
	return cmdutil.Write(cmd.OutOrStdout(), format, out, func(w io.Writer) error {
		switch {
		case replace != "":
			for _, p := range out.Replaced {
				fmt.Fprintln(w, p)
			}
		case split:
			for _, s := range out.Paths {
				fmt.Fprintf(w, "%s\t%s\n", s.Dir, s.Remainder)
			}
		default:
			fmt.Fprintln(w, out.Common)
		}
		return nil
	})
}
