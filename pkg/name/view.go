// SPDX-License-Identifier: MPL-2.0

package name

import (
	"iter"
	"slices"
)

// View is a window [start, end) over a name's components. It borrows the
// name rather than copying it: ranging over All reads the name as it is at
// that moment, and stops early if the name has shrunk below end.
type View struct {
	name       *Name
	start, end int
}

// Start returns the position of the first component in the view.
func (v View) Start() int { return v.start }

// Len returns the number of components currently visible.
func (v View) Len() int {
	if v.name == nil {
		return 0
	}
	return max(0, min(v.end, len(v.name.components))-v.start)
}

// All yields the components of the view. It may be ranged over any number
// of times.
func (v View) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if v.name == nil {
			return
		}
		for i := v.start; i < v.end && i < len(v.name.components); i++ {
			if !yield(v.name.components[i]) {
				return
			}
		}
	}
}

// Components returns a copy of the components of the view.
func (v View) Components() []string {
	return slices.Collect(v.All())
}

// Name returns a new name holding the view's components under the same
// syntax.
func (v View) Name() *Name {
	if v.name == nil {
		return New(nil)
	}
	return &Name{syntax: v.name.syntax, components: v.Components()}
}
