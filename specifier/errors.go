/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "errors"

// Sentinel errors for specifier operations.
var (
	// ErrInvalidPackageSpecifier indicates the protocol or package name could not be extracted.
	ErrInvalidPackageSpecifier = errors.New("invalid package specifier")

	// ErrNotSemverRange indicates the version part is a tag rather than a semver range.
	ErrNotSemverRange = errors.New("version is not a semver range")

	// ErrPackageNotFound indicates no node_modules directory contained the package.
	ErrPackageNotFound = errors.New("package not found")

	// ErrPathTraversal indicates a specifier file escaped its package directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrUnknownCDN indicates an unsupported CDN name.
	ErrUnknownCDN = errors.New("unknown CDN")
)
