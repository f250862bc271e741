// SPDX-License-Identifier: MPL-2.0

package name

import (
	"fmt"
	"strings"

	"github.com/invowk/namekit/pkg/namesyntax"
)

// scanner splits an input string into components. It makes one left-to-right
// pass regardless of the syntax direction.
type scanner struct {
	syntax *namesyntax.Syntax
	input  string
	pos    int
	style  EscapingStyle
}

// tokenize returns the components of input in source order.
func (sc *scanner) tokenize() ([]string, error) {
	var comps []string
	allEmpty := true

	for sc.pos < len(sc.input) {
		comp, err := sc.component()
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
		if comp != "" {
			allEmpty = false
		}

		if sc.pos < len(sc.input) {
			sc.pos += separatorAt(sc.syntax, sc.input, sc.pos)
			// A trailing separator after a non-empty component denotes an
			// empty last component. A name made only of separators does not.
			if sc.pos == len(sc.input) && !allEmpty {
				comps = append(comps, "")
			}
		}
	}

	return comps, nil
}

// component consumes one component, stopping at a separator (which is left
// unconsumed) or at the end of input.
func (sc *scanner) component() (string, error) {
	var b strings.Builder
	in := sc.input
	syn := sc.syntax
	start := true

	for sc.pos < len(in) {
		i := sc.pos

		if start {
			if begin, end, style, ok := beginQuoteAt(syn, in, i); ok {
				sc.record(style)
				sc.pos += len(begin)
				if err := sc.quoted(&b, end, reasonNoCloseQuote); err != nil {
					return "", err
				}
				if !sc.atBoundary() {
					return "", &InvalidNameError{Name: in, Reason: reasonCloseQuoteMidComp}
				}
				return b.String(), nil
			}
		}

		if separatorAt(syn, in, i) > 0 {
			break
		}

		if esc := syn.Escape(); tokenAt(in, i, esc) {
			next := i + len(esc)
			if n := metaAt(syn, in, next); n > 0 {
				// Escaped meta token: drop the escape, keep the token.
				sc.record(StyleEscape)
				b.WriteString(in[next : next+n])
				sc.pos = next + n
				start = false
				continue
			}
			if next >= len(in) {
				return "", &InvalidNameError{
					Name:   in,
					Reason: fmt.Sprintf("unescaped %s at end of component", esc),
				}
			}
			b.WriteString(esc)
			sc.pos = next
			start = false
			continue
		}

		if tv := syn.TypevalSeparator(); tokenAt(in, i, tv) {
			if begin, end, _, ok := beginQuoteAt(syn, in, i+len(tv)); ok {
				// type="value": keep the separator and both quotes verbatim.
				b.WriteString(tv)
				b.WriteString(begin)
				sc.pos = i + len(tv) + len(begin)
				if err := sc.quoted(&b, end, reasonTypevalNoCloseQuote); err != nil {
					return "", err
				}
				b.WriteString(end)
				if !sc.atBoundary() {
					return "", &InvalidNameError{Name: in[sc.pos:], Reason: reasonTypevalCloseQuoteMid}
				}
				return b.String(), nil
			}
		}

		n := runeLen(in, i)
		b.WriteString(in[i : i+n])
		sc.pos += n
		start = false
	}

	return b.String(), nil
}

// quoted copies a quoted run up to and including its closing quote, which is
// consumed but not copied. An escape immediately before the closing quote
// makes the quote literal data.
func (sc *scanner) quoted(b *strings.Builder, end, reason string) error {
	in := sc.input
	esc := sc.syntax.Escape()

	for sc.pos < len(in) && !strings.HasPrefix(in[sc.pos:], end) {
		if tokenAt(in, sc.pos, esc) && tokenAt(in, sc.pos+len(esc), end) {
			b.WriteString(end)
			sc.pos += len(esc) + len(end)
			continue
		}
		n := runeLen(in, sc.pos)
		b.WriteString(in[sc.pos : sc.pos+n])
		sc.pos += n
	}

	if sc.pos >= len(in) {
		return &InvalidNameError{Name: in, Reason: reason}
	}
	sc.pos += len(end)
	return nil
}

// atBoundary reports whether the scanner sits at a separator or at the end.
func (sc *scanner) atBoundary() bool {
	return sc.pos == len(sc.input) || separatorAt(sc.syntax, sc.input, sc.pos) > 0
}

func (sc *scanner) record(style EscapingStyle) {
	if sc.style == StyleNone {
		sc.style = style
	}
}
