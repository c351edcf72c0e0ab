/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pathutil

import "strings"

// FilepathInfo splits a normalized path into its parts.
type FilepathInfo struct {
	// Path is the normalized input.
	Path string `json:"path" yaml:"path"`

	// Dirpath is everything up to and including the last slash.
	Dirpath string `json:"dirpath" yaml:"dirpath"`

	// Dirname is the last segment of Dirpath.
	Dirname string `json:"dirname" yaml:"dirname"`

	// Filename is everything after the last slash.
	Filename string `json:"filename" yaml:"filename"`

	// Basename is Filename without Extname.
	Basename string `json:"basename" yaml:"basename"`

	// Extname starts with "." or is empty. Dotfiles such as ".env" have none.
	Extname string `json:"extname" yaml:"extname"`
}

// ParseFilepathInfo normalizes p and splits it.
func ParseFilepathInfo(p string) FilepathInfo {
	info := FilepathInfo{Path: NormalizePath(p)}

	info.Filename = info.Path
	if i := strings.LastIndex(info.Path, "/"); i >= 0 {
		info.Dirpath = info.Path[:i+1]
		info.Filename = info.Path[i+1:]
	}

	dir := strings.TrimSuffix(info.Dirpath, "/")
	info.Dirname = dir[strings.LastIndex(dir, "/")+1:]

	info.Basename = info.Filename
	if i := strings.LastIndex(info.Filename, "."); i > 0 {
		info.Basename = info.Filename[:i]
		info.Extname = info.Filename[i:]
	}

	return info
}
