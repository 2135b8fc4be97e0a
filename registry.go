// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffcolors

import (
	"github.com/aclements/go-gg/palette"
)

// A Registrar accepts colormap registrations. It abstracts the
// plotting ecosystem's global colormap registry so callers can inject
// their own (including test doubles).
type Registrar interface {
	Register(name string, cm palette.Continuous) error
}

// A Registry is an in-memory colormap registry keyed by name. The zero
// value is not usable; call NewRegistry. A Registry is not
// synchronized: callers that register from multiple goroutines must
// serialize those calls. Lookups on a registry that is no longer being
// mutated are safe from any goroutine.
type Registry struct {
	cmaps map[string]palette.Continuous
	names []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmaps: make(map[string]palette.Continuous)}
}

// Register adds cm under name. It fails with
// *RegistrationConflictError if name is already registered; the
// registry is unchanged on failure.
func (r *Registry) Register(name string, cm palette.Continuous) error {
	if _, ok := r.cmaps[name]; ok {
		return &RegistrationConflictError{Name: name}
	}
	r.cmaps[name] = cm
	r.names = append(r.names, name)
	return nil
}

// Get returns the colormap registered under name.
func (r *Registry) Get(name string) (palette.Continuous, bool) {
	cm, ok := r.cmaps[name]
	return cm, ok
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// DefaultRegistry is the process-wide colormap registry used by
// RegisterColormaps when no Registrar is given.
var DefaultRegistry = NewRegistry()

// RegisterColormaps builds the continuous colormap for every catalog
// color and every variant and registers each under its deterministic
// name (e.g. "diff_Orange_full"). White is skipped: its light and full
// maps would be degenerate. A nil r registers into DefaultRegistry.
//
// Registration stops at the first error, leaving earlier registrations
// in place; re-running against a registry that already holds these
// names fails with *RegistrationConflictError.
func RegisterColormaps(r Registrar) error {
	if r == nil {
		r = DefaultRegistry
	}
	for _, c := range Colors {
		if c.Name == whiteName {
			continue
		}
		for _, v := range Variants() {
			cm, err := Cmap(c.Name, v, false)
			if err != nil {
				return err
			}
			if err := r.Register(cm.Name(), cm); err != nil {
				return err
			}
		}
	}
	return nil
}
