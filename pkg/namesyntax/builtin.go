// SPDX-License-Identifier: MPL-2.0

package namesyntax

// Names of the built-in syntaxes.
const (
	CompositeName = "composite"
	LDAPName      = "ldap"
	DNSName       = "dns"
	FlatName      = "flat"
)

var (
	composite = MustNew(map[string]string{
		PropDirection:   string(LeftToRight),
		PropSeparator:   "/",
		PropEscape:      `\`,
		PropBeginQuote:  `"`,
		PropBeginQuote2: "'",
	})

	ldap = MustNew(map[string]string{
		PropDirection:        string(RightToLeft),
		PropSeparator:        ",",
		PropSeparator2:       ";",
		PropEscape:           `\`,
		PropBeginQuote:       `"`,
		PropIgnoreCase:       "true",
		PropTrimBlanks:       "true",
		PropAvaSeparator:     "+",
		PropTypevalSeparator: "=",
	})

	dns = MustNew(map[string]string{
		PropDirection:  string(RightToLeft),
		PropSeparator:  ".",
		PropIgnoreCase: "true",
	})

	flat = MustNew(map[string]string{
		PropDirection: string(Flat),
	})
)

// CompositeSyntax returns the syntax of composite names spanning naming systems:
// left to right, "/" separated, with "\" escapes and both double and single
// quote styles.
func CompositeSyntax() *Syntax { return composite }

// LDAPSyntax returns a syntax for LDAP distinguished names: right to left, ","
// separated (";" accepted), case-insensitive, blank-trimming, with "+"
// between attribute-value assertions and "=" between type and value.
func LDAPSyntax() *Syntax { return ldap }

// DNSSyntax returns a syntax for domain names: right to left, "." separated,
// case-insensitive.
func DNSSyntax() *Syntax { return dns }

// FlatSyntax returns a syntax whose names hold at most one component.
func FlatSyntax() *Syntax { return flat }

// Builtins returns the built-in syntaxes keyed by name. The map is a fresh
// copy; the syntaxes themselves are shared.
func Builtins() map[string]*Syntax {
	return map[string]*Syntax{
		CompositeName: composite,
		LDAPName:      ldap,
		DNSName:       dns,
		FlatName:      flat,
	}
}
