// SPDX-License-Identifier: MPL-2.0

package name

import (
	"strings"
	"unicode/utf8"

	"github.com/invowk/namekit/pkg/namesyntax"
)

// tokenAt reports whether s contains tok at byte offset i. An empty token
// never matches.
func tokenAt(s string, i int, tok string) bool {
	return tok != "" && i <= len(s) && strings.HasPrefix(s[i:], tok)
}

// separatorAt returns the length of the separator at i, or 0. The primary
// separator wins over the alternate one.
func separatorAt(syn *namesyntax.Syntax, s string, i int) int {
	switch {
	case tokenAt(s, i, syn.Separator()):
		return len(syn.Separator())
	case tokenAt(s, i, syn.Separator2()):
		return len(syn.Separator2())
	default:
		return 0
	}
}

// metaAt returns the length of the meta token (escape, begin quote or
// separator) at i, or 0.
func metaAt(syn *namesyntax.Syntax, s string, i int) int {
	switch {
	case tokenAt(s, i, syn.Escape()):
		return len(syn.Escape())
	case tokenAt(s, i, syn.BeginQuote1()):
		return len(syn.BeginQuote1())
	case tokenAt(s, i, syn.BeginQuote2()):
		return len(syn.BeginQuote2())
	default:
		return separatorAt(syn, s, i)
	}
}

// beginQuoteAt returns the quote pair opening at i, if any.
func beginQuoteAt(syn *namesyntax.Syntax, s string, i int) (begin, end string, style EscapingStyle, ok bool) {
	switch {
	case tokenAt(s, i, syn.BeginQuote1()):
		return syn.BeginQuote1(), syn.EndQuote1(), StyleQuote1, true
	case tokenAt(s, i, syn.BeginQuote2()):
		return syn.BeginQuote2(), syn.EndQuote2(), StyleQuote2, true
	default:
		return "", "", StyleNone, false
	}
}

// runeLen returns the byte length of the rune starting at i.
func runeLen(s string, i int) int {
	_, size := utf8.DecodeRuneInString(s[i:])
	return size
}
