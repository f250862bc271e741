// SPDX-License-Identifier: MPL-2.0

package name

// EscapingStyle records the first quoting or escaping mechanism met while a
// name was parsed. It is informational and does not affect formatting.
type EscapingStyle int

const (
	// StyleNone means the parsed string used no quotes or escapes.
	StyleNone EscapingStyle = iota
	// StyleQuote1 means the first quote style was met first.
	StyleQuote1
	// StyleQuote2 means the second quote style was met first.
	StyleQuote2
	// StyleEscape means an escaped meta token was met first.
	StyleEscape
)

// String returns a lower-case label for the style.
func (s EscapingStyle) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleQuote1:
		return "quote1"
	case StyleQuote2:
		return "quote2"
	case StyleEscape:
		return "escape"
	default:
		return "unknown"
	}
}
