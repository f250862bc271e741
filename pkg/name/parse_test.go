// SPDX-License-Identifier: MPL-2.0

package name

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/invowk/namekit/pkg/namesyntax"
)

var (
	slashLTR = namesyntax.MustNew(map[string]string{
		namesyntax.PropDirection:  string(namesyntax.LeftToRight),
		namesyntax.PropSeparator:  "/",
		namesyntax.PropBeginQuote: "'",
		namesyntax.PropEscape:     `\`,
	})
	slashRTL = namesyntax.MustNew(map[string]string{
		namesyntax.PropDirection:  string(namesyntax.RightToLeft),
		namesyntax.PropSeparator:  "/",
		namesyntax.PropBeginQuote: "'",
		namesyntax.PropEscape:     `\`,
	})
	multiChar = namesyntax.MustNew(map[string]string{
		namesyntax.PropDirection:  string(namesyntax.LeftToRight),
		namesyntax.PropSeparator:  "::",
		namesyntax.PropBeginQuote: "[[",
		namesyntax.PropEndQuote:   "]]",
		namesyntax.PropEscape:     "%%",
	})
	flatQuoted = namesyntax.MustNew(map[string]string{
		namesyntax.PropDirection:  string(namesyntax.Flat),
		namesyntax.PropBeginQuote: `"`,
		namesyntax.PropEscape:     `\`,
	})
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		syntax *namesyntax.Syntax
		input  string
		want   []string
		style  EscapingStyle
	}{
		{"left to right", slashLTR, "a/b/c", []string{"a", "b", "c"}, StyleNone},
		{"right to left", slashRTL, "a/b/c", []string{"c", "b", "a"}, StyleNone},
		{"quoted run keeps separator", slashLTR, "a/'b/c'/d", []string{"a", "b/c", "d"}, StyleQuote1},
		{"escaped quote inside quoted run", slashLTR, `'ab\'cd'`, []string{"ab'cd"}, StyleQuote1},
		{"trailing separator", slashLTR, "a/", []string{"a", ""}, StyleNone},
		{"trailing separator right to left", slashRTL, "a/", []string{"", "a"}, StyleNone},
		{"lone separator", slashLTR, "/", []string{""}, StyleNone},
		{"two separators", slashLTR, "//", []string{"", ""}, StyleNone},
		{"leading separator", slashLTR, "/a", []string{"", "a"}, StyleNone},
		{"inner empty component", slashLTR, "a//b", []string{"a", "", "b"}, StyleNone},
		{"empty string", slashLTR, "", nil, StyleNone},
		{"escaped separator", slashLTR, `a\/b`, []string{"a/b"}, StyleEscape},
		{"escape before plain char is kept", slashLTR, `a\b`, []string{`a\b`}, StyleNone},
		{"escaped escape", slashLTR, `a\\/b`, []string{`a\`, "b"}, StyleEscape},
		{"escaped leading quote", slashLTR, `\'a/b`, []string{"'a", "b"}, StyleEscape},
		{"quote after start is literal", slashLTR, "a'b/c", []string{"a'b", "c"}, StyleNone},
		{"quote then escape style", slashLTR, `'a'/b\/c`, []string{"a", "b/c"}, StyleQuote1},
		{"multi-char tokens", multiChar, "a::[[b::c]]::d%%::e", []string{"a", "b::c", "d::e"}, StyleQuote1},
		{"multi-char escaped escape", multiChar, "a%%%%::b", []string{"a%%", "b"}, StyleEscape},
		{"flat keeps separators", flatQuoted, "a/b,c", []string{"a/b,c"}, StyleNone},
		{"flat quoted", flatQuoted, `"a b"`, []string{"a b"}, StyleQuote1},
		{"composite second quote style", namesyntax.CompositeSyntax(), `'x/y'/z`, []string{"x/y", "z"}, StyleQuote2},
		{"unicode components", slashLTR, "ä/'日本/語'", []string{"ä", "日本/語"}, StyleQuote1},
		{
			"ldap typeval quoting",
			namesyntax.LDAPSyntax(),
			`cn="Smith, J",o=Acme`,
			[]string{"o=Acme", `cn="Smith, J"`},
			StyleNone,
		},
		{
			"ldap alternate separator",
			namesyntax.LDAPSyntax(),
			"cn=a;ou=b",
			[]string{"ou=b", "cn=a"},
			StyleNone,
		},
		{
			"ldap escaped quote inside typeval",
			namesyntax.LDAPSyntax(),
			`cn="a\"b"`,
			[]string{`cn="a"b"`},
			StyleNone,
		},
		{
			"dns",
			namesyntax.DNSSyntax(),
			"www.example.com",
			[]string{"com", "example", "www"},
			StyleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := Parse(tt.syntax, tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := n.Components(); !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if n.EscapingStyle() != tt.style {
				t.Errorf("EscapingStyle() = %v, want %v", n.EscapingStyle(), tt.style)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		syntax     *namesyntax.Syntax
		input      string
		wantName   string
		wantReason string
	}{
		{"unterminated quote", slashLTR, "'abc", "'abc", "no close quote"},
		{"escaped closing quote", slashLTR, `'abc\'`, `'abc\'`, "no close quote"},
		{"quote closed mid component", slashLTR, "a/'ab'c", "a/'ab'c", "close quote appears before end of component"},
		{"trailing escape", slashLTR, `abc\`, `abc\`, `unescaped \ at end of component`},
		{"flat unterminated quote", flatQuoted, `"abc`, `"abc`, "no close quote"},
		{"typeval without close quote", namesyntax.LDAPSyntax(), `cn="ab`, `cn="ab`, "typeval no close quote"},
		{
			"typeval close quote mid component",
			namesyntax.LDAPSyntax(),
			`o=x,cn="ab"c`,
			"c",
			"typeval close quote appears before end of component",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := Parse(tt.syntax, tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.input, n.Components())
			}
			if n != nil {
				t.Error("Parse() returned a partial name alongside an error")
			}
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("error should wrap ErrInvalidName, got: %v", err)
			}
			var nameErr *InvalidNameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("error should be *InvalidNameError, got %T", err)
			}
			if nameErr.Name != tt.wantName {
				t.Errorf("InvalidNameError.Name = %q, want %q", nameErr.Name, tt.wantName)
			}
			if nameErr.Reason != tt.wantReason {
				t.Errorf("InvalidNameError.Reason = %q, want %q", nameErr.Reason, tt.wantReason)
			}
			if !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("Error() = %q, should mention %q", err.Error(), tt.wantReason)
			}
		})
	}
}

func TestParse_NilSyntaxIsComposite(t *testing.T) {
	t.Parallel()

	n, err := Parse(nil, `a/"b/c"`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Syntax() != namesyntax.CompositeSyntax() {
		t.Error("nil syntax should select the composite syntax")
	}
	if got := n.Components(); !slices.Equal(got, []string{"a", "b/c"}) {
		t.Errorf("Components() = %q", got)
	}
}

func TestParseComposite(t *testing.T) {
	t.Parallel()

	n, err := ParseComposite(`x/'y/z'/`)
	if err != nil {
		t.Fatalf("ParseComposite() error = %v", err)
	}
	if n.Syntax() != namesyntax.CompositeSyntax() {
		t.Error("ParseComposite should use the composite syntax")
	}
	if got := n.Components(); !slices.Equal(got, []string{"x", "y/z", ""}) {
		t.Errorf("Components() = %q", got)
	}
	if n.EscapingStyle() != StyleQuote2 {
		t.Errorf("EscapingStyle() = %v, want %v", n.EscapingStyle(), StyleQuote2)
	}
}

func TestParse_FlatSingleComponent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"x", "a/b/c", " spaced out ", `esc\aped`} {
		n, err := Parse(namesyntax.FlatSyntax(), input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if n.Len() != 1 {
			t.Errorf("Parse(%q) has %d components, want 1", input, n.Len())
		}
	}
}
