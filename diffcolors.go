// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diffcolors provides the Differential brand color palette and
// colormaps derived from it.
//
// The package exposes the brand catalog as an ordered list of named
// colors, a categorical palette accessor, and builders for discrete and
// continuous colormaps that satisfy go-gg's palette.Continuous
// interface. Call Tooltip to print a reference of all color names and
// hex codes.
package diffcolors

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// A Color is a named brand color. Hex is always a 6-digit "#RRGGBB"
// value.
type Color struct {
	Name string
	Hex  string
}

// RGBA implements image/color.Color, so catalog entries can be passed
// directly to image and plotting APIs.
func (c Color) RGBA() (r, g, b, a uint32) {
	p, err := colorful.Hex(c.Hex)
	if err != nil {
		return 0, 0, 0, 0xffff
	}
	return p.RGBA()
}

// Colors is the brand catalog in canonical display order. The order is
// chosen for categorical use: high-contrast accents first, neutrals
// last. It is fixed at init and must not be mutated.
var Colors = []Color{
	{"Orange", "#FA693A"},
	{"Forest Green", "#304937"},
	{"Blue", "#ABC9DB"},
	{"Red", "#891D1A"},
	{"Peach", "#FBD2AE"},
	{"Plum", "#362B40"},
	{"Mint", "#D9EAD3"},
	{"Haze", "#5B5776"},
	{"Cream", "#EADFCD"},
	{"Baby Blue", "#EEF9FF"},
	{"Blush", "#EAD6CF"},
	{"Lime", "#70F676"},
	{"Midnight", "#011F2E"},
	{"Cloud", "#FCFCF8"},
	{"Soft Serve", "#FFFAF6"},
	{"Lavendar", "#D6D4E1"},
	{"Grey", "#727272"},
	{"Almost Black", "#1E1E1E"},
	{"White", "#FFFFFF"},
}

// White and Almost Black anchor the light and dark ends of the derived
// colormaps (see Cmap).
const (
	whiteName       = "White"
	almostBlackName = "Almost Black"
)

// canonical normalizes a color name for lookup. Matching is
// case-insensitive and ignores surrounding whitespace.
func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// All returns the full catalog in canonical order. The returned slice
// is a copy; callers may reorder it freely.
func All() []Color {
	out := make([]Color, len(Colors))
	copy(out, Colors)
	return out
}

// Lookup returns the catalog entry for name, matching
// case-insensitively and ignoring surrounding whitespace.
func Lookup(name string) (Color, bool) {
	key := canonical(name)
	for _, c := range Colors {
		if canonical(c.Name) == key {
			return c, true
		}
	}
	return Color{}, false
}

// Resolve maps names to catalog entries, preserving the input order so
// callers control the categorical sequence. A nil or empty names slice
// resolves to the full catalog in canonical order. If any name is not
// in the catalog, Resolve returns an *UnknownColorError for the first
// such name.
func Resolve(names []string) ([]Color, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Color, 0, len(names))
	for _, name := range names {
		c, ok := Lookup(name)
		if !ok {
			return nil, &UnknownColorError{Name: name}
		}
		out = append(out, c)
	}
	return out, nil
}

// Names returns all catalog color names, sorted alphabetically.
func Names() []string {
	names := make([]string, len(Colors))
	for i, c := range Colors {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names
}
