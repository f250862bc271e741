// SPDX-License-Identifier: MPL-2.0

package name

import (
	"strings"

	"github.com/invowk/namekit/pkg/namesyntax"
)

// String returns the name in its syntax's string form. Parsing the result
// with the same syntax yields an equal name.
//
// Components are written in source order (right-to-left names are reversed
// back) and joined with the primary separator. A name made only of empty
// components gets a trailing separator so the empty components survive a
// round trip.
func (n *Name) String() string {
	var b strings.Builder
	sep := n.syntax.Separator()
	rtl := n.syntax.Direction() == namesyntax.RightToLeft
	size := len(n.components)
	allEmpty := true

	for i := range size {
		idx := i
		if rtl {
			idx = size - 1 - i
		}
		comp := formatComponent(n.syntax, n.components[idx])
		if i != 0 {
			b.WriteString(sep)
		}
		if comp != "" {
			allEmpty = false
		}
		b.WriteString(comp)
	}
	if allEmpty && size >= 1 {
		b.WriteString(sep)
	}

	return b.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (n *Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// formatComponent quotes or escapes a single component.
//
// A component holding a separator is wrapped in the first available quote
// style, unless it ends with the escape token: the closing quote would then
// read as escaped, so separators are escaped one by one instead.
func formatComponent(syn *namesyntax.Syntax, comp string) string {
	if containsSeparator(syn, comp) {
		begin, end := syn.BeginQuote1(), syn.EndQuote1()
		if begin == "" {
			begin, end = syn.BeginQuote2(), syn.EndQuote2()
		}
		esc := syn.Escape()
		if begin != "" && (esc == "" || !strings.HasSuffix(comp, esc)) {
			return quoteComponent(comp, begin, end, esc)
		}
	}
	return escapeComponent(syn, comp)
}

func containsSeparator(syn *namesyntax.Syntax, comp string) bool {
	sep, sep2 := syn.Separator(), syn.Separator2()
	return (sep != "" && strings.Contains(comp, sep)) ||
		(sep2 != "" && strings.Contains(comp, sep2))
}

// quoteComponent wraps comp in begin/end. Inside the quotes only end quotes
// need escaping.
func quoteComponent(comp, begin, end, esc string) string {
	var b strings.Builder
	b.WriteString(begin)
	for i := 0; i < len(comp); {
		if strings.HasPrefix(comp[i:], end) {
			b.WriteString(esc)
			b.WriteString(end)
			i += len(end)
			continue
		}
		n := runeLen(comp, i)
		b.WriteString(comp[i : i+n])
		i += n
	}
	b.WriteString(end)
	return b.String()
}

// escapeComponent escapes, in an unquoted component:
//   - a leading begin quote
//   - an escape preceding a meta token, or ending the component
//   - a separator
//   - a begin quote right after the type/value separator
func escapeComponent(syn *namesyntax.Syntax, comp string) string {
	esc := syn.Escape()
	if esc == "" {
		return comp
	}

	var b strings.Builder
	tv := syn.TypevalSeparator()
	for i := 0; i < len(comp); {
		if i == 0 {
			if begin, _, _, ok := beginQuoteAt(syn, comp, 0); ok {
				b.WriteString(esc)
				b.WriteString(begin)
				i += len(begin)
				continue
			}
		}

		if tokenAt(comp, i, esc) {
			next := i + len(esc)
			if next >= len(comp) || metaAt(syn, comp, next) > 0 {
				b.WriteString(esc)
			}
			b.WriteString(esc)
			i = next
			continue
		}

		if n := separatorAt(syn, comp, i); n > 0 {
			b.WriteString(esc)
			b.WriteString(comp[i : i+n])
			i += n
			continue
		}

		if tokenAt(comp, i, tv) {
			if begin, _, _, ok := beginQuoteAt(syn, comp, i+len(tv)); ok {
				b.WriteString(tv)
				b.WriteString(esc)
				b.WriteString(begin)
				i += len(tv) + len(begin)
				continue
			}
		}

		n := runeLen(comp, i)
		b.WriteString(comp[i : i+n])
		i += n
	}
	return b.String()
}
