// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffcolors

// Palette returns a categorical palette as hex strings. With no
// arguments it returns the full catalog in canonical order; otherwise
// it returns the named colors in the given order. It fails only with
// *UnknownColorError.
func Palette(names ...string) ([]string, error) {
	colors, err := Resolve(names)
	if err != nil {
		return nil, err
	}
	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.Hex
	}
	return hexes, nil
}
