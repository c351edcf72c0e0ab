/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package locate provides the locate command for uripath.
package locate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/uripath/cmd/cmdutil"
	"bennypowers.dev/uripath/specifier"
)

// Cmd is the locate cobra command.
var Cmd = &cobra.Command{
	Use:   "locate specifiers...",
	Short: "Find the files npm: and jsr: specifiers point to",
	Long: `Locate package files in node_modules, walking up from the project root
(or rootDir from the config). jsr: packages are looked up in the npm
compatibility layer under node_modules/@jsr/.

With --remote, print a CDN URL instead. The CDN comes from --cdn,
URIPATH_CDN, the config file, or defaults to unpkg.

Supported CDNs: unpkg, esm.sh, esm.run, jspm, jsdelivr`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("remote", false, "Print CDN URLs instead of local paths")
	Cmd.Flags().String("cdn", "", "CDN used with --remote")
	_ = viper.BindPFlag("cdn", Cmd.Flags().Lookup("cdn"))
}

// Remote is a CDN location.
type Remote struct {
	Specifier string `json:"specifier" yaml:"specifier"`
	URL       string `json:"url" yaml:"url"`
}

// RemoteURLs maps each specifier to its URL on cdn.
func RemoteURLs(specs []string, cdn specifier.CDN) ([]Remote, error) {
	out := make([]Remote, 0, len(specs))
	for _, s := range specs {
		u, ok := specifier.CDNURL(s, cdn)
		if !ok {
			return nil, fmt.Errorf("%s has no %s URL", s, displayCDN(cdn))
		}
		out = append(out, Remote{Specifier: s, URL: u})
	}
	return out, nil
}

func displayCDN(cdn specifier.CDN) string {
	if cdn == "" {
		return string(specifier.CDNUnpkg)
	}
	return string(cdn)
}

func run(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")

	env, err := cmdutil.Load()
	if err != nil {
		return err
	}
	format, err := env.Format()
	if err != nil {
		return err
	}

	if remote {
		name := viper.GetString("cdn")
		if name == "" {
			name = env.Config.CDN
		}
		var cdn specifier.CDN
		if name != "" {
			if cdn, err = specifier.ParseCDN(name); err != nil {
				return err
			}
		}
		remotes, err := RemoteURLs(args, cdn)
		if err != nil {
			return err
		}
		return cmdutil.Write(cmd.OutOrStdout(), format, remotes, func(w io.Writer) error {
			for _, r := range remotes {
				fmt.Fprintln(w, r.URL)
			}
			return nil
		})
	}

	rootDir := env.Config.RootDir
	if rootDir == "" {
		rootDir = env.Root
	}
	resolver, err := specifier.NewDefaultResolver(env.FS, rootDir)
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	files := make([]*specifier.ResolvedFile, 0, len(args))
	for _, a := range args {
		rf, err := resolver.Resolve(a)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", a, err)
		}
		files = append(files, rf)
	}

	return cmdutil.Write(cmd.OutOrStdout(), format, files, func(w io.Writer) error {
		for _, f := range files {
			fmt.Fprintln(w, f.Path)
		}
		return nil
	})
}
