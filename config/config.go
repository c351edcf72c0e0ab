/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads uripath project configuration.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/uripath/specifier"
)

// Config represents the uripath configuration file.
type Config struct {
	// Base is the default base for resolving relative paths.
	Base string `yaml:"base" json:"base"`

	// CDN is the default CDN for `locate --cdn`.
	CDN string `yaml:"cdn" json:"cdn"`

	// RootDir is where node_modules lookup starts. Relative values are
	// taken relative to the directory holding .config/.
	RootDir string `yaml:"rootDir" json:"rootDir"`

	// Format is the default output format (text, json, yaml).
	Format string `yaml:"format" json:"format"`

	// Paths lists inputs used when a command gets no arguments.
	Paths []PathSpec `yaml:"paths" json:"paths"`
}

// PathSpec is one configured input.
// It can be written as a plain string or as an object with overrides.
type PathSpec struct {
	// Path is a local path, glob, URL or package specifier.
	Path string `yaml:"path" json:"path"`

	// Base overrides the global base for this path.
	Base string `yaml:"base" json:"base"`
}

// UnmarshalYAML handles both string and object forms for PathSpec.
func (p *PathSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Path = node.Value
		return nil
	}

	type rawPathSpec PathSpec
	return node.Decode((*rawPathSpec)(p))
}

// UnmarshalJSON handles both string and object forms for PathSpec.
func (p *PathSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Path = s
		return nil
	}

	type rawPathSpec PathSpec
	return json.Unmarshal(data, (*rawPathSpec)(p))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{Format: "text"}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if c.CDN != "" {
		if _, err := specifier.ParseCDN(c.CDN); err != nil {
			return fmt.Errorf("config cdn: %w", err)
		}
	}
	switch c.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("config format: unknown output format %q", c.Format)
	}
	return nil
}

// Entry is one expanded path and the base it resolves against.
type Entry struct {
	Path string `yaml:"path" json:"path"`
	Base string `yaml:"base,omitempty" json:"base,omitempty"`
}

// BaseFor returns the base configured for path, falling back to Base.
func (c *Config) BaseFor(path string) string {
	for _, spec := range c.Paths {
		if spec.Path == path && spec.Base != "" {
			return spec.Base
		}
	}
	return c.Base
}

// PathList returns the configured paths without expansion.
func (c *Config) PathList() []string {
	paths := make([]string, 0, len(c.Paths))
	for _, spec := range c.Paths {
		paths = append(paths, spec.Path)
	}
	return paths
}
