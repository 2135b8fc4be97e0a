// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffcolors

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	cm, err := Cmap("Orange", VariantFull, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Register(cm.Name(), cm); err != nil {
		t.Fatalf("Register: unexpected error %v", err)
	}

	got, ok := r.Get("diff_Orange_full")
	if !ok {
		t.Fatalf("Get(diff_Orange_full) missed after Register")
	}
	if got != cm {
		t.Errorf("Get returned a different colormap than was registered")
	}
	if diff := cmp.Diff([]string{"diff_Orange_full"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	err = r.Register(cm.Name(), cm)
	var rc *RegistrationConflictError
	if !errors.As(err, &rc) {
		t.Fatalf("duplicate Register: want *RegistrationConflictError, have %v", err)
	}
	if rc.Name != "diff_Orange_full" {
		t.Errorf("conflict names %q, want %q", rc.Name, "diff_Orange_full")
	}
}

func TestRegisterColormaps(t *testing.T) {
	r := NewRegistry()
	if err := RegisterColormaps(r); err != nil {
		t.Fatalf("RegisterColormaps: unexpected error %v", err)
	}

	// Every catalog color except White, times every variant.
	want := (len(Colors) - 1) * len(Variants())
	if got := len(r.Names()); got != want {
		t.Errorf("registered %d colormaps, want %d", got, want)
	}

	cm, ok := r.Get("diff_Orange_full")
	if !ok {
		t.Fatalf("Get(diff_Orange_full) missed after RegisterColormaps")
	}
	direct, err := Cmap("Orange", VariantFull, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got, want := mapHex(t, cm, x), mapHex(t, direct, x); got != want {
			t.Errorf("registered map at %v = %s, want %s", x, got, want)
		}
	}

	for _, v := range Variants() {
		if _, ok := r.Get("diff_White_" + string(v)); ok {
			t.Errorf("diff_White_%s was registered; want White skipped", v)
		}
	}
}

func TestRegisterColormapsConflict(t *testing.T) {
	r := NewRegistry()
	if err := RegisterColormaps(r); err != nil {
		t.Fatal(err)
	}
	err := RegisterColormaps(r)
	var rc *RegistrationConflictError
	if !errors.As(err, &rc) {
		t.Fatalf("second RegisterColormaps: want *RegistrationConflictError, have %v", err)
	}
}
