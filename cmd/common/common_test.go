/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"reflect"
	"testing"
)

func TestCompute(t *testing.T) {
	paths := []string{"/repo/src/a.js", "/repo/src/lib/b.js"}

	out := Compute(paths, false, "")
	if out.Common != "/repo/src/" || out.Paths != nil || out.Replaced != nil {
		t.Errorf("Compute(plain) = %+v", out)
	}

	out = Compute(paths, true, "")
	wantSplit := []Split{{"/repo/src/", "a.js"}, {"/repo/src/", "lib/b.js"}}
	if !reflect.DeepEqual(out.Paths, wantSplit) {
		t.Errorf("Compute(split).Paths = %+v, want %+v", out.Paths, wantSplit)
	}

	out = Compute(paths, false, "dist")
	wantReplaced := []string{"dist/a.js", "dist/lib/b.js"}
	if !reflect.DeepEqual(out.Replaced, wantReplaced) {
		t.Errorf("Compute(replace).Replaced = %q, want %q", out.Replaced, wantReplaced)
	}
}
