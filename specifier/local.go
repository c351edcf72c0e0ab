/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"net/url"

	"bennypowers.dev/uripath/scheme"
)

// LocalResolver handles plain paths, "./" and "../" paths, and file: URLs.
// Remote URLs and package specifiers are left to other resolvers.
type LocalResolver struct{}

// NewLocalResolver creates a resolver for paths on the local filesystem.
func NewLocalResolver() *LocalResolver {
	return &LocalResolver{}
}

// Resolve returns paths unchanged and file: URLs as their path.
func (r *LocalResolver) Resolve(spec string) (*ResolvedFile, error) {
	path := spec
	switch scheme.Detect(spec) {
	case scheme.Local, scheme.Relative:
	case scheme.File:
		u, err := url.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid file URL %s: %w", spec, err)
		}
		path = u.Path
	default:
		return nil, fmt.Errorf("not a local path: %s", spec)
	}

	return &ResolvedFile{
		Specifier: spec,
		Path:      path,
		Kind:      KindLocal,
	}, nil
}

// CanResolve reports whether spec names something on the local filesystem.
func (r *LocalResolver) CanResolve(spec string) bool {
	switch scheme.Detect(spec) {
	case scheme.Local, scheme.Relative, scheme.File:
		return true
	}
	return false
}
