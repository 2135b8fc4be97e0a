// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffcolors

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTooltip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTooltip(&buf); err != nil {
		t.Fatalf("WriteTooltip: unexpected error %v", err)
	}
	out := buf.String()

	for _, c := range Colors {
		if !strings.Contains(out, c.Name) {
			t.Errorf("tooltip is missing color name %q", c.Name)
		}
		if !strings.Contains(out, c.Hex) {
			t.Errorf("tooltip is missing hex code %s", c.Hex)
		}
	}

	// The hex column must be aligned across all table rows.
	col := -1
	for _, line := range strings.Split(out, "\n") {
		i := strings.Index(line, "#")
		if i < 0 {
			continue
		}
		if col == -1 {
			col = i
		} else if i != col {
			t.Errorf("hex code at column %d in %q, want column %d", i, line, col)
		}
	}

	// The table is sorted by name.
	last := -1
	for _, name := range Names() {
		i := strings.Index(out, "  "+name)
		if i < 0 {
			t.Errorf("table row for %q not found", name)
			continue
		}
		if i < last {
			t.Errorf("table row for %q out of order", name)
		}
		last = i
	}
}
