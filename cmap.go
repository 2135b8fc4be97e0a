// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffcolors

import (
	"image/color"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
	"github.com/lucasb-eyer/go-colorful"
)

// A Variant selects the interpolation endpoints of a continuous
// colormap built by Cmap.
type Variant string

const (
	// VariantLight interpolates white → base.
	VariantLight Variant = "light"

	// VariantDark interpolates base → Almost Black.
	VariantDark Variant = "dark"

	// VariantFull interpolates white → base → Almost Black.
	VariantFull Variant = "full"
)

// Variants returns all recognized variants.
func Variants() []Variant {
	return []Variant{VariantLight, VariantDark, VariantFull}
}

// ParseVariant parses a variant token, matching case-insensitively and
// ignoring surrounding whitespace. It fails with *InvalidVariantError.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(canonical(s)); v {
	case VariantLight, VariantDark, VariantFull:
		return v, nil
	}
	return "", &InvalidVariantError{Variant: s}
}

// A Gradient is a continuous colormap that linearly interpolates in
// RGB space between an ordered sequence of stops, evenly spaced over
// [0, 1]. It implements go-gg's palette.Continuous.
type Gradient struct {
	name  string
	stops []colorful.Color
	pos   []float64
}

var _ palette.Continuous = (*Gradient)(nil)

// newGradient builds a gradient from hex stops. The stops must be
// well-formed catalog hex values.
func newGradient(name string, hexes []string) (*Gradient, error) {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		stops[i] = c
	}
	return &Gradient{
		name:  name,
		stops: stops,
		pos:   vec.Linspace(0, 1, len(stops)),
	}, nil
}

// Name returns the gradient's deterministic name, e.g.
// "diff_Forest_Green_full".
func (g *Gradient) Name() string { return g.name }

// NumStops returns the number of interpolation stops.
func (g *Gradient) NumStops() int { return len(g.stops) }

// Map returns the gradient color at x. Values outside [0, 1] clamp to
// the endpoints; the endpoints themselves are exact stop colors.
func (g *Gradient) Map(x float64) color.Color {
	if x <= g.pos[0] {
		return g.stops[0]
	}
	for i := 0; i < len(g.stops)-1; i++ {
		if x <= g.pos[i+1] {
			t := (x - g.pos[i]) / (g.pos[i+1] - g.pos[i])
			return g.stops[i].BlendRgb(g.stops[i+1], t).Clamped()
		}
	}
	return g.stops[len(g.stops)-1]
}

// Colors resamples the gradient to n discrete levels, evenly spaced
// over [0, 1] endpoints included. It returns nil if n < 1.
func (g *Gradient) Colors(n int) []color.Color {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []color.Color{g.stops[0]}
	}
	out := make([]color.Color, n)
	for i, x := range vec.Linspace(0, 1, n) {
		out[i] = g.Map(x)
	}
	return out
}

// A Listed is a discrete colormap: a fixed ordered sequence of colors
// with no interpolation. Its Map method steps through the colors so a
// Listed can be used anywhere a palette.Continuous is expected.
type Listed struct {
	name   string
	colors []colorful.Color
}

var _ palette.Continuous = (*Listed)(nil)

// Name returns the colormap's name.
func (l *Listed) Name() string { return l.name }

// Len returns the number of colors.
func (l *Listed) Len() int { return len(l.colors) }

// At returns the i'th color, wrapping around for i >= Len.
func (l *Listed) At(i int) color.Color {
	return l.colors[i%len(l.colors)]
}

// Colors returns the listed colors in order.
func (l *Listed) Colors() []color.Color {
	out := make([]color.Color, len(l.colors))
	for i, c := range l.colors {
		out[i] = c
	}
	return out
}

// Map returns the color of the bin containing x, clamping x to [0, 1].
func (l *Listed) Map(x float64) color.Color {
	if x <= 0 {
		return l.colors[0]
	}
	i := int(x * float64(len(l.colors)))
	if i >= len(l.colors) {
		i = len(l.colors) - 1
	}
	return l.colors[i]
}

// ListedCmap builds a discrete colormap whose colors are exactly the
// named catalog colors in the given order. It fails with
// *UnknownColorError for a name not in the catalog and with ErrEmpty
// when given no names.
func ListedCmap(names ...string) (*Listed, error) {
	if len(names) == 0 {
		return nil, ErrEmpty
	}
	resolved, err := Resolve(names)
	if err != nil {
		return nil, err
	}
	colors := make([]colorful.Color, len(resolved))
	for i, c := range resolved {
		p, err := colorful.Hex(c.Hex)
		if err != nil {
			return nil, err
		}
		colors[i] = p
	}
	return &Listed{name: "differential_listed", colors: colors}, nil
}

// Cmap builds a continuous colormap from a single catalog color.
// The variant selects the stops:
//
//	light: white → base
//	dark:  base → Almost Black
//	full:  white → base → Almost Black
//
// If reverse is true the stop order is flipped. Stops are evenly
// spaced over [0, 1]. Cmap fails with *UnknownColorError if base is
// not in the catalog and *InvalidVariantError for an unrecognized
// variant.
func Cmap(base string, variant Variant, reverse bool) (*Gradient, error) {
	c, ok := Lookup(base)
	if !ok {
		return nil, &UnknownColorError{Name: base}
	}
	white, _ := Lookup(whiteName)
	dark, _ := Lookup(almostBlackName)

	var hexes []string
	switch variant {
	case VariantLight:
		hexes = []string{white.Hex, c.Hex}
	case VariantDark:
		hexes = []string{c.Hex, dark.Hex}
	case VariantFull:
		hexes = []string{white.Hex, c.Hex, dark.Hex}
	default:
		return nil, &InvalidVariantError{Variant: string(variant)}
	}
	if reverse {
		for i, j := 0, len(hexes)-1; i < j; i, j = i+1, j-1 {
			hexes[i], hexes[j] = hexes[j], hexes[i]
		}
	}
	return newGradient(cmapName(c, variant, reverse), hexes)
}

// cmapName generates the deterministic registration name for a
// colormap: "diff_<Name>_<variant>", spaces replaced by underscores,
// with an "_r" suffix when reversed.
func cmapName(c Color, variant Variant, reverse bool) string {
	name := "diff_" + strings.ReplaceAll(c.Name, " ", "_") + "_" + string(variant)
	if reverse {
		name += "_r"
	}
	return name
}
