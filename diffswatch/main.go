// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command diffswatch renders a PNG reference sheet of the Differential
// palette: one strip of the categorical palette in canonical order,
// then one gradient strip per colormap variant of a chosen base color.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/differentialbio/diffcolors"
)

const (
	stripW = 512
	stripH = 32
	gap    = 4
)

func main() {
	base := flag.String("base", "Orange", "base color for the gradient strips")
	reverse := flag.Bool("r", false, "reverse the gradient strips")
	out := flag.String("o", "diffswatch.png", "output PNG file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	variants := diffcolors.Variants()
	dst := image.NewRGBA(image.Rect(0, 0, stripW, (len(variants)+1)*(stripH+gap)-gap))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	// Categorical palette, one cell per color.
	colors := diffcolors.All()
	pal := image.NewRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		pal.Set(i, 0, c)
	}
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, stripW, stripH), pal, pal.Bounds(), draw.Src, nil)

	// One gradient strip per variant.
	y := stripH + gap
	for _, v := range variants {
		cm, err := diffcolors.Cmap(*base, v, *reverse)
		if err != nil {
			log.Fatal(err)
		}
		strip := image.NewRGBA(image.Rect(0, 0, stripW, 1))
		for x := 0; x < stripW; x++ {
			strip.Set(x, 0, cm.Map(float64(x)/float64(stripW-1)))
		}
		draw.NearestNeighbor.Scale(dst, image.Rect(0, y, stripW, y+stripH), strip, strip.Bounds(), draw.Src, nil)
		y += stripH + gap
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatal(err)
	}
}
