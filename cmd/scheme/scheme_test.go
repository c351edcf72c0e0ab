/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scheme

import "testing"

func TestClassify(t *testing.T) {
	got := Classify([]string{"npm:react", "./a.js", "https://x.dev", "/etc/hosts"})
	want := []string{"npm", "relative", "https", "local"}

	if len(got) != len(want) {
		t.Fatalf("Classify returned %d results, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Scheme != want[i] {
			t.Errorf("Classify(%q) = %q, want %q", r.Path, r.Scheme, want[i])
		}
	}
}
