// SPDX-License-Identifier: MPL-2.0

package name

import (
	"cmp"
	"iter"
	"slices"

	"github.com/invowk/namekit/pkg/namesyntax"

	"github.com/cespare/xxhash/v2"
)

// Name is an ordered sequence of components governed by a syntax. The syntax
// is shared, never copied or modified.
type Name struct {
	syntax     *namesyntax.Syntax
	components []string
	style      EscapingStyle
}

// New returns an empty name. A nil syntax selects the composite syntax.
func New(syn *namesyntax.Syntax) *Name {
	if syn == nil {
		syn = namesyntax.CompositeSyntax()
	}
	return &Name{syntax: syn}
}

// Parse splits s into components under syn. A nil syntax selects the
// composite syntax. Malformed quoting and a trailing unescaped escape yield
// an *InvalidNameError; no partial name is returned.
func Parse(syn *namesyntax.Syntax, s string) (*Name, error) {
	n := New(syn)
	sc := &scanner{syntax: n.syntax, input: s}
	comps, err := sc.tokenize()
	if err != nil {
		return nil, err
	}
	if n.syntax.Direction() == namesyntax.RightToLeft {
		slices.Reverse(comps)
	}
	n.components = comps
	n.style = sc.style
	return n, nil
}

// ParseComposite parses s as a composite name.
func ParseComposite(s string) (*Name, error) {
	return Parse(namesyntax.CompositeSyntax(), s)
}

// FromComponents builds a name from already split components, in logical
// order. A flat syntax accepts at most one component.
func FromComponents(syn *namesyntax.Syntax, comps ...string) (*Name, error) {
	n := New(syn)
	if n.syntax.IsFlat() && len(comps) > 1 {
		return nil, &InvalidNameError{Name: comps[1], Reason: reasonFlatName}
	}
	n.components = slices.Clone(comps)
	return n, nil
}

// Syntax returns the syntax governing n.
func (n *Name) Syntax() *namesyntax.Syntax { return n.syntax }

// EscapingStyle returns the first quoting or escaping style met when n was
// parsed, or StyleNone.
func (n *Name) EscapingStyle() EscapingStyle { return n.style }

// Len returns the number of components.
func (n *Name) Len() int { return len(n.components) }

// IsEmpty reports whether n has no components.
func (n *Name) IsEmpty() bool { return len(n.components) == 0 }

// Get returns the component at position i.
func (n *Name) Get(i int) (string, error) {
	if i < 0 || i >= len(n.components) {
		return "", &IndexOutOfRangeError{Index: i, Size: len(n.components)}
	}
	return n.components[i], nil
}

// All yields the components in order. The sequence reads n each time it is
// ranged over.
func (n *Name) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range n.components {
			if !yield(c) {
				return
			}
		}
	}
}

// Components returns a copy of the components.
func (n *Name) Components() []string {
	return slices.Clone(n.components)
}

// Clone returns an independent copy of n sharing its syntax.
func (n *Name) Clone() *Name {
	return &Name{
		syntax:     n.syntax,
		components: slices.Clone(n.components),
		style:      n.style,
	}
}

// Prefix returns a view of the first i components.
func (n *Name) Prefix(i int) (View, error) {
	if i < 0 || i > len(n.components) {
		return View{}, &IndexOutOfRangeError{Index: i, Size: len(n.components)}
	}
	return View{name: n, start: 0, end: i}, nil
}

// Suffix returns a view of the components from position i to the end.
func (n *Name) Suffix(i int) (View, error) {
	size := len(n.components)
	if i < 0 || i > size {
		return View{}, &IndexOutOfRangeError{Index: i, Size: size}
	}
	return View{name: n, start: i, end: size}, nil
}

// StartsWith reports whether the first count components of n match the
// components drawn from prefix, under n's syntax. It returns false when
// count is out of range or prefix runs out early.
func (n *Name) StartsWith(count int, prefix iter.Seq[string]) bool {
	if count < 0 || count > len(n.components) {
		return false
	}
	return n.matches(n.components[:count], prefix)
}

// EndsWith reports whether the last count components of n match the
// components drawn from suffix, under n's syntax.
func (n *Name) EndsWith(count int, suffix iter.Seq[string]) bool {
	start := len(n.components) - count
	if count < 0 || start < 0 {
		return false
	}
	return n.matches(n.components[start:], suffix)
}

// HasPrefix reports whether other's components lead n.
func (n *Name) HasPrefix(other *Name) bool {
	return n.StartsWith(other.Len(), other.All())
}

// HasSuffix reports whether other's components end n.
func (n *Name) HasSuffix(other *Name) bool {
	return n.EndsWith(other.Len(), other.All())
}

func (n *Name) matches(mine []string, theirs iter.Seq[string]) bool {
	next, stop := iter.Pull(theirs)
	defer stop()
	for _, my := range mine {
		his, ok := next()
		if !ok || !n.syntax.EqualComponents(my, his) {
			return false
		}
	}
	return true
}

// Equal reports whether other has the same number of components and each
// pair is equal after normalization with n's syntax. The syntax of other is
// ignored.
func (n *Name) Equal(other *Name) bool {
	if other == nil || len(other.components) != len(n.components) {
		return false
	}
	for i, my := range n.components {
		if !n.syntax.EqualComponents(my, other.components[i]) {
			return false
		}
	}
	return true
}

// Compare orders n and other component by component using n's syntax, then
// by length. It returns -1, 0 or +1. A nil other compares as an empty name.
func (n *Name) Compare(other *Name) int {
	if n == other {
		return 0
	}
	var theirs []string
	if other != nil {
		theirs = other.components
	}
	for i := range min(len(n.components), len(theirs)) {
		if c := n.syntax.CompareComponents(n.components[i], theirs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(n.components), len(theirs))
}

// Hash returns the sum of the hashes of the normalized components. Names
// that are Equal under a shared syntax have equal hashes.
func (n *Name) Hash() uint64 {
	var h uint64
	for _, c := range n.components {
		h += xxhash.Sum64String(n.syntax.Normalize(c))
	}
	return h
}

// Add appends comp.
func (n *Name) Add(comp string) error {
	if err := n.checkFlat(comp, 1); err != nil {
		return err
	}
	n.components = append(n.components, comp)
	return nil
}

// Insert places comp at position i, shifting later components up.
func (n *Name) Insert(i int, comp string) error {
	if err := n.checkFlat(comp, 1); err != nil {
		return err
	}
	if i < 0 || i > len(n.components) {
		return &IndexOutOfRangeError{Index: i, Size: len(n.components)}
	}
	n.components = slices.Insert(n.components, i, comp)
	return nil
}

// AddAll appends every component of comps and reports whether any was added.
// Either all components are added or, on error, none are.
func (n *Name) AddAll(comps iter.Seq[string]) (bool, error) {
	return n.InsertAll(len(n.components), comps)
}

// InsertAll inserts every component of comps at position i, keeping their
// order, and reports whether any was added. Either all components are
// inserted or, on error, none are.
func (n *Name) InsertAll(i int, comps iter.Seq[string]) (bool, error) {
	added := slices.Collect(comps)
	if len(added) == 0 {
		return false, nil
	}
	if err := n.checkFlat(added[len(added)-1], len(added)); err != nil {
		return false, err
	}
	if i < 0 || i > len(n.components) {
		return false, &IndexOutOfRangeError{Index: i, Size: len(n.components)}
	}
	n.components = slices.Insert(n.components, i, added...)
	return true, nil
}

// Remove deletes and returns the component at position i.
func (n *Name) Remove(i int) (string, error) {
	if i < 0 || i >= len(n.components) {
		return "", &IndexOutOfRangeError{Index: i, Size: len(n.components)}
	}
	comp := n.components[i]
	n.components = slices.Delete(n.components, i, i+1)
	return comp, nil
}

// checkFlat rejects growing a flat name beyond one component.
func (n *Name) checkFlat(comp string, adding int) error {
	if n.syntax.IsFlat() && len(n.components)+adding > 1 {
		return &InvalidNameError{Name: comp, Reason: reasonFlatName}
	}
	return nil
}
