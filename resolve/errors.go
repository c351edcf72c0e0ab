/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import "errors"

// Sentinel errors for URL resolution. Malformed npm:/jsr: specifiers
// surface as specifier.ErrInvalidPackageSpecifier.
var (
	// ErrMissingBase indicates a relative path was given without a base.
	ErrMissingBase = errors.New("relative path requires a base")

	// ErrUnsupportedBaseScheme indicates a base that relative paths cannot be resolved against.
	ErrUnsupportedBaseScheme = errors.New("unsupported base scheme")

	// ErrEmptyPath indicates an empty input path.
	ErrEmptyPath = errors.New("empty path")
)
