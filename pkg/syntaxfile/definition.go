// SPDX-License-Identifier: MPL-2.0

package syntaxfile

import (
	"regexp"

	"github.com/invowk/namekit/pkg/namesyntax"
)

// namePattern matches valid syntax names in every format.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

type (
	// File is the decoded form of a CUE or TOML syntax file.
	File struct {
		Syntaxes map[string]Definition `json:"syntaxes,omitempty" toml:"syntaxes"`
	}

	// Definition is one syntax as written in a CUE or TOML file. Empty
	// fields are absent tokens.
	Definition struct {
		Direction        string `json:"direction" toml:"direction"`
		Separator        string `json:"separator,omitempty" toml:"separator,omitempty"`
		Separator2       string `json:"separator2,omitempty" toml:"separator2,omitempty"`
		Escape           string `json:"escape,omitempty" toml:"escape,omitempty"`
		IgnoreCase       bool   `json:"ignore_case,omitempty" toml:"ignore_case,omitempty"`
		TrimBlanks       bool   `json:"trim_blanks,omitempty" toml:"trim_blanks,omitempty"`
		BeginQuote       string `json:"begin_quote,omitempty" toml:"begin_quote,omitempty"`
		EndQuote         string `json:"end_quote,omitempty" toml:"end_quote,omitempty"`
		BeginQuote2      string `json:"begin_quote2,omitempty" toml:"begin_quote2,omitempty"`
		EndQuote2        string `json:"end_quote2,omitempty" toml:"end_quote2,omitempty"`
		AvaSeparator     string `json:"ava_separator,omitempty" toml:"ava_separator,omitempty"`
		TypevalSeparator string `json:"typeval_separator,omitempty" toml:"typeval_separator,omitempty"`
	}
)

// Properties converts d to the property mapping accepted by namesyntax.New.
func (d Definition) Properties() map[string]string {
	props := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			props[key] = value
		}
	}
	set(namesyntax.PropDirection, d.Direction)
	set(namesyntax.PropSeparator, d.Separator)
	set(namesyntax.PropSeparator2, d.Separator2)
	set(namesyntax.PropEscape, d.Escape)
	set(namesyntax.PropBeginQuote, d.BeginQuote)
	set(namesyntax.PropEndQuote, d.EndQuote)
	set(namesyntax.PropBeginQuote2, d.BeginQuote2)
	set(namesyntax.PropEndQuote2, d.EndQuote2)
	set(namesyntax.PropAvaSeparator, d.AvaSeparator)
	set(namesyntax.PropTypevalSeparator, d.TypevalSeparator)
	if d.IgnoreCase {
		props[namesyntax.PropIgnoreCase] = "true"
	}
	if d.TrimBlanks {
		props[namesyntax.PropTrimBlanks] = "true"
	}
	return props
}

// DefinitionOf is the inverse of Properties for a built syntax.
func DefinitionOf(s *namesyntax.Syntax) Definition {
	return Definition{
		Direction:        string(s.Direction()),
		Separator:        s.Separator(),
		Separator2:       s.Separator2(),
		Escape:           s.Escape(),
		IgnoreCase:       s.CaseInsensitive(),
		TrimBlanks:       s.TrimBlanks(),
		BeginQuote:       s.BeginQuote1(),
		EndQuote:         s.EndQuote1(),
		BeginQuote2:      s.BeginQuote2(),
		EndQuote2:        s.EndQuote2(),
		AvaSeparator:     s.AvaSeparator(),
		TypevalSeparator: s.TypevalSeparator(),
	}
}

// build turns decoded definitions into syntaxes, failing on the first bad
// one in name order.
func (f *File) build(filename string) (map[string]*namesyntax.Syntax, error) {
	out := make(map[string]*namesyntax.Syntax, len(f.Syntaxes))
	for _, name := range sortedKeys(f.Syntaxes) {
		syn, err := buildSyntax(filename, name, f.Syntaxes[name].Properties())
		if err != nil {
			return nil, err
		}
		out[name] = syn
	}
	return out, nil
}

func buildSyntax(filename, name string, props map[string]string) (*namesyntax.Syntax, error) {
	if !namePattern.MatchString(name) {
		return nil, &DefinitionError{File: filename, Syntax: name, Err: ErrInvalidSyntaxName}
	}
	syn, err := namesyntax.New(props)
	if err != nil {
		return nil, &DefinitionError{File: filename, Syntax: name, Err: err}
	}
	return syn, nil
}
