/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command uripath normalizes, compares and resolves paths, URLs and
// npm:/jsr: package specifiers.
package main

import (
	"context"
	"os"

	"bennypowers.dev/uripath/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
