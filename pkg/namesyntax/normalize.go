// SPDX-License-Identifier: MPL-2.0

package namesyntax

import "strings"

// Normalize returns the form of component used for comparison and hashing:
// blanks are trimmed when the syntax trims blanks, and the result is
// lower-cased when the syntax is case-insensitive.
func (s *Syntax) Normalize(component string) string {
	if s.trimBlanks {
		component = trimBlanks(component)
	}
	if s.caseInsensitive {
		component = strings.ToLower(component)
	}
	return component
}

// EqualComponents reports whether a and b are the same component under s.
func (s *Syntax) EqualComponents(a, b string) bool {
	return s.Normalize(a) == s.Normalize(b)
}

// CompareComponents orders a and b under s, returning -1, 0 or +1.
func (s *Syntax) CompareComponents(a, b string) int {
	return strings.Compare(s.Normalize(a), s.Normalize(b))
}

// trimBlanks strips space and control characters from both ends.
func trimBlanks(v string) string {
	return strings.TrimFunc(v, func(r rune) bool { return r <= ' ' })
}
