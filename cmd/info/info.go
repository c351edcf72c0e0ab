/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package info provides the info command for uripath.
package info

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/uripath/cmd/cmdutil"
	"bennypowers.dev/uripath/pathutil"
)

// Cmd is the info cobra command.
var Cmd = &cobra.Command{
	Use:   "info paths...",
	Short: "Split paths into directory, file name and extension",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
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

	infos := make([]pathutil.FilepathInfo, len(args))
	for i, a := range args {
		infos[i] = pathutil.ParseFilepathInfo(a)
	}

	return cmdutil.Write(cmd.OutOrStdout(), format, infos, func(w io.Writer) error {
		for i, fi := range infos {
			if i > 0 {
				fmt.Fprintln(w)
			}
			for _, f := range [][2]string{
				{"path", fi.Path},
				{"dirpath", fi.Dirpath},
				{"dirname", fi.Dirname},
				{"filename", fi.Filename},
				{"basename", fi.Basename},
				{"extname", fi.Extname},
			} {
				fmt.Fprintf(w, "%-9s %s\n", cmdutil.Label(f[0])+":", f[1])
			}
		}
		return nil
	})
}
