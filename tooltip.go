// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffcolors

import (
	"fmt"
	"io"
	"os"
)

const tooltipHeader = `Differential color helper

Color names and hex codes
-------------------------
`

const tooltipUsage = `
Usage patterns
--------------

1. Categorical palettes (lines, bars, scatter)
	hexes, err := diffcolors.Palette()
	hexes, err := diffcolors.Palette("Orange", "Blue", "Forest Green")

2. Sequential / continuous colormaps
	cm, err := diffcolors.Cmap("Orange", diffcolors.VariantLight, false)

   Variants:
     light : white → base
     dark  : base → Almost Black
     full  : white → base → Almost Black

3. Registered colormaps
	diffcolors.RegisterColormaps(nil)
	cm, ok := diffcolors.DefaultRegistry.Get("diff_Orange_full")

Tip: spelling matters – use the names exactly as listed above.
`

// WriteTooltip writes a usage guide and an aligned table of all color
// names and hex codes to w. The table is sorted by name.
func WriteTooltip(w io.Writer) error {
	width := 0
	for _, c := range Colors {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}
	if _, err := io.WriteString(w, tooltipHeader); err != nil {
		return err
	}
	for _, name := range Names() {
		c, _ := Lookup(name)
		if _, err := fmt.Fprintf(w, "  %-*s  %s\n", width, c.Name, c.Hex); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, tooltipUsage)
	return err
}

// Tooltip prints the reference table and usage guide to standard
// output.
func Tooltip() {
	WriteTooltip(os.Stdout)
}
