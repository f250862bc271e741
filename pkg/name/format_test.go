// SPDX-License-Identifier: MPL-2.0

package name

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/invowk/namekit/pkg/namesyntax"
)

func TestString(t *testing.T) {
	t.Parallel()

	noQuotes := namesyntax.MustNew(map[string]string{
		namesyntax.PropDirection: string(namesyntax.LeftToRight),
		namesyntax.PropSeparator: "/",
		namesyntax.PropEscape:    `\`,
	})
	noEscape := namesyntax.MustNew(map[string]string{
		namesyntax.PropDirection: string(namesyntax.LeftToRight),
		namesyntax.PropSeparator: "/",
	})

	tests := []struct {
		name   string
		syntax *namesyntax.Syntax
		comps  []string
		want   string
	}{
		{"empty", namesyntax.CompositeSyntax(), nil, ""},
		{"plain", namesyntax.CompositeSyntax(), []string{"a", "b", "c"}, "a/b/c"},
		{"separator is quoted", namesyntax.CompositeSyntax(), []string{"a", "b/c"}, `a/"b/c"`},
		{"trailing empty", namesyntax.CompositeSyntax(), []string{"a", ""}, "a/"},
		{"single empty", namesyntax.CompositeSyntax(), []string{""}, "/"},
		{"two empty", namesyntax.CompositeSyntax(), []string{"", ""}, "//"},
		{"leading empty", namesyntax.CompositeSyntax(), []string{"", "a"}, "/a"},
		{"leading double quote", namesyntax.CompositeSyntax(), []string{`"x`}, `\"x`},
		{"leading single quote", namesyntax.CompositeSyntax(), []string{"'x"}, `\'x`},
		{"trailing escape", namesyntax.CompositeSyntax(), []string{`a\`}, `a\\`},
		{"escape before plain char", namesyntax.CompositeSyntax(), []string{`a\b`}, `a\b`},
		{"escape inside quotes", namesyntax.CompositeSyntax(), []string{`a\/b`}, `"a\/b"`},
		{"end quote inside quotes", namesyntax.CompositeSyntax(), []string{`x"/y`}, `"x\"/y"`},
		{"separator and trailing escape", namesyntax.CompositeSyntax(), []string{`a/b\`}, `a\/b\\`},
		{"no quotes escapes separators", noQuotes, []string{"a/b", "c"}, `a\/b/c`},
		{"no escape writes verbatim", noEscape, []string{"a", "'b"}, "a/'b"},
		{"right to left", namesyntax.DNSSyntax(), []string{"com", "example", "www"}, "www.example.com"},
		{"right to left trailing empty", slashRTL, []string{"", "a"}, "a/"},
		{"ldap alternate separator", namesyntax.LDAPSyntax(), []string{"o=x", "cn=a;b"}, `"cn=a;b",o=x`},
		{"ldap quote after typeval", namesyntax.LDAPSyntax(), []string{`cn="ab`}, `cn=\"ab`},
		{"flat", flatQuoted, []string{`"a/b`}, `\"a/b`},
		{"multi-char", multiChar, []string{"a", "b::c"}, "a::[[b::c]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := FromComponents(tt.syntax, tt.comps...)
			if err != nil {
				t.Fatalf("FromComponents() error = %v", err)
			}
			if got := n.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			text, err := n.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			if string(text) != tt.want {
				t.Errorf("MarshalText() = %q, want %q", text, tt.want)
			}
		})
	}
}

func TestString_ReparsesToSameComponents(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a/b/c",
		"a/'b/c'/d",
		`'ab\'cd'`,
		"a/",
		"/",
		"//",
		`a\/b`,
		`a\\/b`,
		`\'a`,
		"ä/'日本/語'",
	}
	for _, syn := range []*namesyntax.Syntax{slashLTR, slashRTL} {
		for _, input := range inputs {
			n, err := Parse(syn, input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			again, err := Parse(syn, n.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", n.String(), err)
			}
			if !slices.Equal(again.Components(), n.Components()) {
				t.Errorf("%q -> %q -> %q, want %q", input, n.String(), again.Components(), n.Components())
			}
		}
	}
}

// TestString_RoundTripRandom builds random names from an alphabet rich in
// meta tokens and checks that String followed by Parse gives the same
// components back.
func TestString_RoundTripRandom(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(0x6e616d65, 0x6b6974))
	for range 300 {
		syn := randomSyntax(rng)
		comps := randomComponents(rng, syn)

		n, err := FromComponents(syn, comps...)
		if err != nil {
			t.Fatalf("FromComponents(%q) error = %v", comps, err)
		}
		s := n.String()
		back, err := Parse(syn, s)
		if err != nil {
			t.Fatalf("syntax %v: Parse(%q) of %q error = %v", syn.Properties(), s, comps, err)
		}
		if !slices.Equal(back.Components(), n.Components()) {
			t.Fatalf("syntax %v: %q -> %q -> %q", syn.Properties(), comps, s, back.Components())
		}
		if !back.Equal(n) || back.Hash() != n.Hash() {
			t.Fatalf("syntax %v: reparsed %q is not equal to the original", syn.Properties(), s)
		}
	}
}

// randomSyntax picks distinct single-character tokens. The escape is always
// present; quotes, the alternate separator and the type/value separator are
// optional.
func randomSyntax(rng *rand.Rand) *namesyntax.Syntax {
	pool := []rune(`/.,;:|\%"'<>=+#`)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	take := func() string {
		r := pool[0]
		pool = pool[1:]
		return string(r)
	}

	directions := []namesyntax.Direction{namesyntax.LeftToRight, namesyntax.RightToLeft, namesyntax.Flat}
	props := map[string]string{
		namesyntax.PropDirection: string(directions[rng.IntN(len(directions))]),
		namesyntax.PropSeparator: take(),
		namesyntax.PropEscape:    take(),
	}
	if rng.IntN(2) == 0 {
		props[namesyntax.PropSeparator2] = take()
	}
	if rng.IntN(3) != 0 {
		props[namesyntax.PropBeginQuote] = take()
		if rng.IntN(2) == 0 {
			props[namesyntax.PropEndQuote] = take()
		}
	}
	if rng.IntN(2) == 0 {
		props[namesyntax.PropBeginQuote2] = take()
		props[namesyntax.PropEndQuote2] = take()
	}
	if rng.IntN(2) == 0 {
		props[namesyntax.PropTypevalSeparator] = take()
	}
	return namesyntax.MustNew(props)
}

func randomComponents(rng *rand.Rand, syn *namesyntax.Syntax) []string {
	alphabet := []string{"a", "b", "Z", " ", "é"}
	for _, tok := range []string{
		syn.Separator(), syn.Separator2(), syn.Escape(),
		syn.BeginQuote1(), syn.EndQuote1(), syn.BeginQuote2(), syn.EndQuote2(),
		syn.TypevalSeparator(),
	} {
		if tok != "" {
			alphabet = append(alphabet, tok, tok)
		}
	}

	count := rng.IntN(5)
	if syn.IsFlat() {
		// A lone empty flat component prints as "" and reads back as no
		// components at all.
		count = rng.IntN(2)
	}
	comps := make([]string, count)
	for i := range comps {
		var b strings.Builder
		for range rng.IntN(7) {
			b.WriteString(alphabet[rng.IntN(len(alphabet))])
		}
		comps[i] = b.String()
		if syn.IsFlat() && comps[i] == "" {
			comps[i] = "a"
		}
	}
	return comps
}
