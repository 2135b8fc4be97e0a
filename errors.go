// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffcolors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned by operations that require at least one color
// when given none.
var ErrEmpty = errors.New("diffcolors: no colors given")

// An UnknownColorError reports a requested color name that is not in
// the catalog.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color name %q (valid names: %s)",
		e.Name, strings.Join(Names(), ", "))
}

// An InvalidVariantError reports an unrecognized colormap variant.
type InvalidVariantError struct {
	Variant string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid colormap variant %q (must be %q, %q, or %q)",
		e.Variant, VariantLight, VariantDark, VariantFull)
}

// A RegistrationConflictError reports an attempt to register a
// colormap under a name that is already taken.
type RegistrationConflictError struct {
	Name string
}

func (e *RegistrationConflictError) Error() string {
	return fmt.Sprintf("colormap %q is already registered", e.Name)
}
