/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scheme

import "errors"

// ErrUnknownScheme indicates a scheme name that is not one of the known values.
var ErrUnknownScheme = errors.New("unknown scheme")
