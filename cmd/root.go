/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for uripath.
package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/uripath/cmd/common"
	"bennypowers.dev/uripath/cmd/fetch"
	"bennypowers.dev/uripath/cmd/info"
	"bennypowers.dev/uripath/cmd/locate"
	"bennypowers.dev/uripath/cmd/normalize"
	"bennypowers.dev/uripath/cmd/parse"
	"bennypowers.dev/uripath/cmd/resolve"
	"bennypowers.dev/uripath/cmd/scheme"
	"bennypowers.dev/uripath/cmd/version"
	"bennypowers.dev/uripath/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "uripath",
	Short: "Normalize, compare and resolve paths, URLs and package specifiers",
	Long: `uripath classifies, normalizes and resolves local paths, URLs and
npm:/jsr: package specifiers.

Settings can come from flags, URIPATH_* environment variables, or
.config/uripath.{yaml,yml,json} in the project root, in that order.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd)
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project root holding .config/uripath.yaml")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug messages")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("URIPATH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(common.Cmd)
	rootCmd.AddCommand(fetch.Cmd)
	rootCmd.AddCommand(info.Cmd)
	rootCmd.AddCommand(locate.Cmd)
	rootCmd.AddCommand(normalize.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(scheme.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if viper.GetBool("quiet") {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetOutput(cmd.ErrOrStderr())
	}
	logger.SetVerbose(viper.GetBool("verbose"))
	return nil
}
