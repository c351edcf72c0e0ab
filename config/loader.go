/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	urifs "bennypowers.dev/uripath/fs"
	"bennypowers.dev/uripath/scheme"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "uripath"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/uripath.{yaml,yml,json} in rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem urifs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		case ".json":
			err = json.Unmarshal(jsonc.ToJSON(data), cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}

		if cfg.RootDir != "" && !filepath.IsAbs(cfg.RootDir) {
			cfg.RootDir = filepath.Join(rootDir, cfg.RootDir)
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem urifs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandPaths expands glob patterns in Paths.
// URLs and package specifiers are passed through unchanged.
func (c *Config) ExpandPaths(filesystem urifs.FileSystem, rootDir string) ([]string, error) {
	entries, err := c.ExpandEntries(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths, nil
}

// ExpandEntries expands Paths like ExpandPaths, pairing each result with
// the base of the entry it came from.
func (c *Config) ExpandEntries(filesystem urifs.FileSystem, rootDir string) ([]Entry, error) {
	var result []Entry
	for _, spec := range c.Paths {
		expanded, err := expandPath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}
		base := spec.Base
		if base == "" {
			base = c.Base
		}
		for _, p := range expanded {
			result = append(result, Entry{Path: p, Base: base})
		}
	}
	return result, nil
}

// ExpandPatterns expands each pattern in order.
func ExpandPatterns(filesystem urifs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string
	for _, pattern := range patterns {
		expanded, err := expandPath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// expandPath expands a single path which may contain globs.
// Local paths are made absolute against rootDir. Relative paths ("./",
// "../") stay relative so they still resolve against their base; glob
// matches for them are reported relative to rootDir.
func expandPath(filesystem urifs.FileSystem, rootDir, pattern string) ([]string, error) {
	s := scheme.Detect(pattern)
	if s != scheme.Local && s != scheme.Relative {
		return []string{pattern}, nil
	}
	if s == scheme.Relative && !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	abs := pattern
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(rootDir, abs)
	}
	if !containsGlob(abs) {
		return []string{abs}, nil
	}

	matches, err := expandGlob(filesystem, abs)
	if err != nil || s != scheme.Relative {
		return matches, err
	}
	for i, m := range matches {
		rel, err := filepath.Rel(rootDir, m)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)
		if !strings.HasPrefix(rel, "../") {
			rel = "./" + rel
		}
		matches[i] = rel
	}
	return matches, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and keeps matching files.
func expandGlob(filesystem urifs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	if !doublestar.ValidatePattern(relPattern) {
		return nil, fmt.Errorf("%w: %s", doublestar.ErrBadPattern, pattern)
	}

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
