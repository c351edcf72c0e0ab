/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmdutil holds helpers shared by the uripath subcommands:
// config loading with flag and environment overrides, and output rendering.
package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/uripath/config"
	"bennypowers.dev/uripath/fs"
	"bennypowers.dev/uripath/internal/logger"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Env is the resolved environment for one command invocation.
type Env struct {
	// FS is the filesystem commands read from.
	FS fs.FileSystem

	// Root is the absolute project directory holding .config/.
	Root string

	// Config is the loaded config, or defaults.
	Config *config.Config
}

// Load resolves the project root from the "root" setting and loads its config.
func Load() (*Env, error) {
	root := viper.GetString("root")
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Load(filesystem, abs)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		logger.Debug("no config found in %s", filepath.Join(abs, config.ConfigDir))
		cfg = config.Default()
	}

	return &Env{FS: filesystem, Root: abs, Config: cfg}, nil
}

// Format returns the output format: flag or environment first, then config.
func (e *Env) Format() (string, error) {
	format := viper.GetString("format")
	if format == "" {
		format = e.Config.Format
	}
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// Inputs returns args, or the configured paths expanded against Root when
// there are none.
func (e *Env) Inputs(args []string) ([]string, error) {
	entries, err := e.Entries(args)
	if err != nil {
		return nil, err
	}
	inputs := make([]string, len(entries))
	for i, entry := range entries {
		inputs[i] = entry.Path
	}
	return inputs, nil
}

// Entries is Inputs with the configured base of each path. Entries built
// from args carry no base.
func (e *Env) Entries(args []string) ([]config.Entry, error) {
	if len(args) > 0 {
		entries := make([]config.Entry, len(args))
		for i, a := range args {
			entries[i] = config.Entry{Path: a}
		}
		return entries, nil
	}
	entries, err := e.Config.ExpandEntries(e.FS, e.Root)
	if err != nil {
		return nil, fmt.Errorf("error expanding config paths: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no paths given and none found in config")
	}
	return entries, nil
}

// Write renders v as JSON or YAML, or calls text for the text format.
func Write(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error marshaling output: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// Label title-cases a field name for text output.
// Casers are stateful, so each call gets its own.
func Label(name string) string {
	return cases.Title(language.English).String(name)
}
