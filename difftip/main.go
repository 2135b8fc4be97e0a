// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command difftip prints a reference of the Differential brand colors:
// every color name, its hex code, and a short usage guide. With
// -color it prints each entry on a swatch of its own color instead
// (requires a truecolor terminal).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/differentialbio/diffcolors"
	"github.com/lucasb-eyer/go-colorful"
)

func main() {
	colorFlag := flag.Bool("color", false, "print ANSI color swatches (truecolor terminal)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-color]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *colorFlag {
		printSwatches(os.Stdout)
		return
	}
	diffcolors.Tooltip()
}

func printSwatches(w io.Writer) {
	width := 0
	for _, c := range diffcolors.Colors {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}
	for _, c := range diffcolors.All() {
		bg, err := colorful.Hex(c.Hex)
		if err != nil {
			continue
		}
		r, g, b := bg.RGB255()
		// Pick black or white text by luminance so the name
		// stays readable on its own swatch.
		var fr, fg, fb uint8
		if _, y, _ := bg.Xyz(); y < 0.45 {
			fr, fg, fb = 255, 255, 255
		}
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm %-*s  %s \x1b[0m\n",
			r, g, b, fr, fg, fb, width, c.Name, c.Hex)
	}
}
