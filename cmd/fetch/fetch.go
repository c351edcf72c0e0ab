/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fetch provides the fetch command for uripath.
package fetch

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/uripath/cmd/cmdutil"
	fetchlib "bennypowers.dev/uripath/fetch"
	"bennypowers.dev/uripath/specifier"
)

// Cmd is the fetch cobra command.
var Cmd = &cobra.Command{
	Use:   "fetch specifier",
	Short: "Print the file a specifier points to",
	Long: `Print the contents of the file behind a local path or an npm:/jsr:
specifier. Installed packages are read from node_modules; packages that
are not installed are downloaded from a CDN unless --offline is set.

The CDN comes from --cdn, URIPATH_CDN, the config file, or defaults to unpkg.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("cdn", "", "CDN used when the package is not installed")
	Cmd.Flags().Bool("offline", false, "Never fetch from the network")
	Cmd.Flags().Duration("timeout", fetchlib.DefaultTimeout, "Network fetch timeout")
	Cmd.Flags().Int64("max-size", fetchlib.DefaultMaxSize, "Largest response accepted, in bytes")
}

// Output is the structured form of a fetched file.
type Output struct {
	Specifier string `json:"specifier" yaml:"specifier"`
	Source    string `json:"source" yaml:"source"`
	Content   string `json:"content" yaml:"content"`
}

func run(cmd *cobra.Command, args []string) error {
	offline, _ := cmd.Flags().GetBool("offline")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	maxSize, _ := cmd.Flags().GetInt64("max-size")

	env, err := cmdutil.Load()
	if err != nil {
		return err
	}
	format, err := env.Format()
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("cdn")
	if name == "" {
		name = viper.GetString("cdn")
	}
	if name == "" {
		name = env.Config.CDN
	}
	var cdn specifier.CDN
	if name != "" {
		if cdn, err = specifier.ParseCDN(name); err != nil {
			return err
		}
	}

	rootDir := env.Config.RootDir
	if rootDir == "" {
		rootDir = env.Root
	}
	opts := fetchlib.Options{
		Root:    rootDir,
		FS:      env.FS,
		Timeout: timeout,
		CDN:     cdn,
	}
	if !offline {
		opts.Fetcher = fetchlib.NewHTTPFetcher(maxSize)
	}

	res, err := fetchlib.Content(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("error fetching %s: %w", args[0], err)
	}

	out := Output{Specifier: res.Specifier, Source: res.Source, Content: string(res.Content)}
	return cmdutil.Write(cmd.OutOrStdout(), format, out, func(w io.Writer) error {
		_, err := w.Write(res.Content)
		return err
	})
}
